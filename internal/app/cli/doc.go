// Package cli is the terminal front end of pdfvoice.
//
// # Overview
//
// The package wires the application together (App) and drives an interactive
// read–eval–print loop (runREPL). Before login the user can register or
// authenticate; after a successful login the username becomes the session
// identity held on the App, and the remaining commands operate on that user's
// uploaded-file list, load PDF text, and synthesize speech.
//
// All command handlers convert expected failures (taken username, bad
// credentials, missing file entry, extraction or synthesis errors) into
// printed messages; none of them terminates the loop.
//
// Input helpers (GetSimpleText, GetPassword, GetMultiline) and the output
// function are declared as variables so tests can substitute them.
package cli
