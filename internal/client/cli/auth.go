package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/ecoscan/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a name, email and password and attempts to
// create a new account.
//
// On success the new session becomes current and "Success!" is printed. The
// password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.session.Register(ctx, name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailTaken):
			log.Printf("Registration unsuccessful: email already registered")
		case errors.Is(err, common.ErrInvalidInput):
			log.Printf("Registration unsuccessful: check name, email and password (min 8 characters)")
		default:
			log.Printf("Registration unsuccessful: %s", err.Error())
		}
		return err
	}

	a.api.SetAccessToken(sess.Token)
	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session becomes current and is persisted for the next start.
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.session.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			log.Printf("Login unsuccessful: invalid email or password")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.api.SetAccessToken(sess.Token)
	log.Printf("Login successful")
	return nil
}

// Logout clears the current session, its persisted copy, and the access
// token held by the API client. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.api.SetAccessToken("")
	a.workflow.Reset()
	fmt.Println("Logged out")
	return nil
}
