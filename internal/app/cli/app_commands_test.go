package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfvoice/internal/common"
	"pdfvoice/internal/logging"
	"pdfvoice/internal/tts"
)

// ------------ helpers ------------

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }

func readerFromLines(lines ...string) *bufio.Reader {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return bufio.NewReader(strings.NewReader(b.String()))
}

// capturePrintln redirects user-facing output into a slice for assertions.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeAuth struct {
	registerErr error
	authErr     error

	registered []string
	authed     []string
}

func (f *fakeAuth) Register(ctx context.Context, username string, password []byte) error {
	f.registered = append(f.registered, username)
	return f.registerErr
}

func (f *fakeAuth) Authenticate(ctx context.Context, username string, password []byte) error {
	f.authed = append(f.authed, username)
	return f.authErr
}

type fakeLibrary struct {
	addErr    error
	listOut   []string
	listErr   error
	removeErr error

	added   [][2]string
	removed [][2]string
}

func (f *fakeLibrary) Add(ctx context.Context, username, path string) error {
	f.added = append(f.added, [2]string{username, path})
	return f.addErr
}

func (f *fakeLibrary) List(ctx context.Context, username string) ([]string, error) {
	return f.listOut, f.listErr
}

func (f *fakeLibrary) Remove(ctx context.Context, username, path string) error {
	f.removed = append(f.removed, [2]string{username, path})
	return f.removeErr
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(ctx context.Context, path string) (string, error) {
	return f.text, f.err
}

type fakeSynth struct {
	path  string
	err   error
	calls int
	text  string
	lang  tts.Language
}

func (f *fakeSynth) Synthesize(ctx context.Context, text string, lang tts.Language) (string, error) {
	f.calls++
	f.text = text
	f.lang = lang
	return f.path, f.err
}

func newTestApp(in *bufio.Reader) *App {
	return &App{
		log:      nopLogger{},
		language: tts.LanguageEnglish,
		reader:   in,
	}
}

func withPassword(t *testing.T, pw []byte) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { readPassword = old })
}

// ------------ auth commands ------------

func TestRegister_Success(t *testing.T) {
	out := capturePrintln(t)
	withPassword(t, []byte("pw123"))

	auth := &fakeAuth{}
	a := newTestApp(readerFromLines("alice"))
	a.auth = auth

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, []string{"alice"}, auth.registered)
	assert.Contains(t, strings.Join(*out, ""), "Registration successful!")
}

func TestRegister_UsernameTaken(t *testing.T) {
	out := capturePrintln(t)
	withPassword(t, []byte("pw123"))

	auth := &fakeAuth{registerErr: common.ErrUsernameTaken}
	a := newTestApp(readerFromLines("alice"))
	a.auth = auth

	// a taken username is reported, not escalated
	require.NoError(t, a.Register(context.Background()))
	assert.Contains(t, strings.Join(*out, ""), "Username already exists!")
}

func TestRegister_EmptyUsernameRejected(t *testing.T) {
	out := capturePrintln(t)

	auth := &fakeAuth{}
	a := newTestApp(readerFromLines(""))
	a.auth = auth

	require.NoError(t, a.Register(context.Background()))
	assert.Empty(t, auth.registered)
	assert.Contains(t, strings.Join(*out, ""), "Username must not be empty")
}

func TestLogin_SetsSessionUsername(t *testing.T) {
	out := capturePrintln(t)
	withPassword(t, []byte("pw123"))

	a := newTestApp(readerFromLines("alice"))
	a.auth = &fakeAuth{}

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "alice", a.username)
	assert.Contains(t, strings.Join(*out, ""), "Welcome, alice!")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	out := capturePrintln(t)
	withPassword(t, []byte("wrong"))

	a := newTestApp(readerFromLines("alice"))
	a.auth = &fakeAuth{authErr: common.ErrInvalidCredentials}

	require.NoError(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, strings.Join(*out, ""), "Invalid username or password!")
}

func TestLogout_ClearsSession(t *testing.T) {
	_ = capturePrintln(t)

	a := newTestApp(readerFromLines())
	a.username = "alice"
	a.loadedText = "some text"

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.loadedText)
}

// ------------ library commands ------------

func TestUpload_RegistersAndLoads(t *testing.T) {
	out := capturePrintln(t)

	lib := &fakeLibrary{}
	a := newTestApp(readerFromLines("/docs/a.pdf"))
	a.username = "alice"
	a.library = lib
	a.extract = &fakeExtractor{text: "page one"}

	require.NoError(t, a.Upload(context.Background()))
	assert.Equal(t, [][2]string{{"alice", "/docs/a.pdf"}}, lib.added)
	assert.Equal(t, "page one", a.loadedText)
	assert.Contains(t, strings.Join(*out, ""), "page one")
}

func TestUpload_RequiresLogin(t *testing.T) {
	out := capturePrintln(t)

	lib := &fakeLibrary{}
	a := newTestApp(readerFromLines("/docs/a.pdf"))
	a.library = lib

	require.NoError(t, a.Upload(context.Background()))
	assert.Empty(t, lib.added)
	assert.Contains(t, strings.Join(*out, ""), "Please login first")
}

func TestList_PrintsPaths(t *testing.T) {
	out := capturePrintln(t)

	a := newTestApp(readerFromLines())
	a.username = "alice"
	a.library = &fakeLibrary{listOut: []string{"/docs/a.pdf", "/docs/b.pdf"}}

	require.NoError(t, a.List(context.Background()))
	joined := strings.Join(*out, "")
	assert.Contains(t, joined, "/docs/a.pdf")
	assert.Contains(t, joined, "/docs/b.pdf")
}

func TestList_Empty(t *testing.T) {
	out := capturePrintln(t)

	a := newTestApp(readerFromLines())
	a.username = "alice"
	a.library = &fakeLibrary{}

	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, strings.Join(*out, ""), "No uploaded files")
}

func TestDelete_Success(t *testing.T) {
	out := capturePrintln(t)

	lib := &fakeLibrary{}
	a := newTestApp(readerFromLines("/docs/a.pdf"))
	a.username = "alice"
	a.library = lib

	require.NoError(t, a.Delete(context.Background()))
	assert.Equal(t, [][2]string{{"alice", "/docs/a.pdf"}}, lib.removed)
	assert.Contains(t, strings.Join(*out, ""), "deleted successfully")
}

func TestDelete_NotFound(t *testing.T) {
	out := capturePrintln(t)

	a := newTestApp(readerFromLines("/docs/missing.pdf"))
	a.username = "alice"
	a.library = &fakeLibrary{removeErr: common.ErrNotFound}

	require.NoError(t, a.Delete(context.Background()))
	assert.Contains(t, strings.Join(*out, ""), "No such file in your list")
}

// ------------ pdf / speech commands ------------

func TestLoad_ExtractionFailureKeepsPreviousText(t *testing.T) {
	out := capturePrintln(t)

	a := newTestApp(readerFromLines("/docs/bad.pdf"))
	a.username = "alice"
	a.loadedText = "previous"
	a.extract = &fakeExtractor{err: errors.New("malformed document")}

	require.NoError(t, a.Load(context.Background()))
	assert.Equal(t, "previous", a.loadedText)
	assert.Contains(t, strings.Join(*out, ""), "Failed to load PDF:")
}

func TestPlay_NoTextLoaded(t *testing.T) {
	out := capturePrintln(t)

	synth := &fakeSynth{}
	a := newTestApp(readerFromLines())
	a.username = "alice"
	a.speech = synth

	require.NoError(t, a.Play(context.Background()))
	assert.Zero(t, synth.calls, "synthesizer must not be called without text")
	assert.Contains(t, strings.Join(*out, ""), "No text available to play!")
}

func TestPlay_SynthesizesLoadedText(t *testing.T) {
	out := capturePrintln(t)

	origStart := startCommand
	var opened []string
	startCommand = func(name string, args ...string) error {
		opened = append(opened, name)
		return nil
	}
	t.Cleanup(func() { startCommand = origStart })

	synth := &fakeSynth{path: "/tmp/audio/speech-1.mp3"}
	a := newTestApp(readerFromLines())
	a.username = "alice"
	a.loadedText = "hello from the pdf"
	a.language = tts.LanguageKhmer
	a.speech = synth

	require.NoError(t, a.Play(context.Background()))
	assert.Equal(t, 1, synth.calls)
	assert.Equal(t, "hello from the pdf", synth.text)
	assert.Equal(t, tts.LanguageKhmer, synth.lang)
	assert.Len(t, opened, 1)
	assert.Contains(t, strings.Join(*out, ""), "/tmp/audio/speech-1.mp3")
}

func TestSpeak_EmptyInputRejected(t *testing.T) {
	out := capturePrintln(t)

	synth := &fakeSynth{}
	a := newTestApp(readerFromLines(""))
	a.username = "alice"
	a.speech = synth

	require.NoError(t, a.Speak(context.Background()))
	assert.Zero(t, synth.calls)
	assert.Contains(t, strings.Join(*out, ""), "Please enter text to speak!")
}

func TestSpeak_SynthesizesTypedText(t *testing.T) {
	_ = capturePrintln(t)

	origStart := startCommand
	startCommand = func(name string, args ...string) error { return nil }
	t.Cleanup(func() { startCommand = origStart })

	synth := &fakeSynth{path: "/tmp/audio/speech-2.mp3"}
	a := newTestApp(readerFromLines("first line", "second line", ""))
	a.username = "alice"
	a.speech = synth

	require.NoError(t, a.Speak(context.Background()))
	assert.Equal(t, 1, synth.calls)
	assert.Equal(t, "first line\nsecond line", synth.text)
}

func TestSpeak_SynthesisErrorReported(t *testing.T) {
	out := capturePrintln(t)

	synth := &fakeSynth{err: errors.New("backend unreachable")}
	a := newTestApp(readerFromLines("say this", ""))
	a.username = "alice"
	a.speech = synth

	require.NoError(t, a.Speak(context.Background()))
	assert.Contains(t, strings.Join(*out, ""), "Failed to play audio:")
}

func TestSetLanguage_Valid(t *testing.T) {
	_ = capturePrintln(t)

	a := newTestApp(readerFromLines("km"))

	require.NoError(t, a.SetLanguage(context.Background()))
	assert.Equal(t, tts.LanguageKhmer, a.language)
}

func TestSetLanguage_InvalidKeepsCurrent(t *testing.T) {
	out := capturePrintln(t)

	a := newTestApp(readerFromLines("fr"))

	require.NoError(t, a.SetLanguage(context.Background()))
	assert.Equal(t, tts.LanguageEnglish, a.language)
	assert.Contains(t, strings.Join(*out, ""), "unsupported language")
}
