package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pdfvoice/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for a username and password and attempts to create a new
// account. A taken username is reported to the user; the password bytes are
// wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		printlnFn("Username must not be empty")
		return nil
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			printlnFn("Username already exists!")
			return nil
		}
		a.log.Error(ctx, "registration failed", "error", err)
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Registration successful!")
	return nil
}

// Login prompts for credentials and verifies them. On success the username
// becomes the session identity for the rest of the process lifetime.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Authenticate(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid username or password!")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.username = username
	printlnFn(fmt.Sprintf("Welcome, %s!", username))
	return nil
}

// Logout drops the session identity and any loaded text.
func (a *App) Logout(ctx context.Context) error {
	a.username = ""
	a.loadedText = ""
	return nil
}
