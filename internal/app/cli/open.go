package cli

import (
	"os/exec"
	"runtime"
)

// startCommand is a test seam for spawning the opener process.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// openArtifact hands a file to the OS default handler. The process is
// started and not waited on; its exit code is not inspected.
func openArtifact(path string) error {
	switch runtime.GOOS {
	case "windows":
		return startCommand("cmd", "/c", "start", "", path)
	case "darwin":
		return startCommand("open", path)
	default:
		return startCommand("xdg-open", path)
	}
}
