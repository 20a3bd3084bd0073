package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/artmarket/internal/common"
)

// Input seams, replaced in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getPrice      = GetPrice
	getList       = GetList
)

var (
	errAlreadyLoggedIn = errors.New("already logged in, logout first")
	errLoginRequired   = errors.New("login required")
	errLoginFailed     = errors.New("invalid email or password")
	errRegisterFailed  = errors.New("registration failed, the email may be taken")
)

func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		return errAlreadyLoggedIn
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !a.session.Register(ctx, name, email, string(password)) {
		return errRegisterFailed
	}
	printlnFn("Registered and logged in as", email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		return errAlreadyLoggedIn
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !a.session.Login(ctx, email, string(password)) {
		return errLoginFailed
	}
	printlnFn("Logged in as", email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errLoginRequired
	}
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

func requireArg(args []string, name string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("missing %s", name)
	}
	return args[0], nil
}
