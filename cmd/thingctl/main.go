// Command thingctl is a small command-line client for the Thingful server.
//
// Usage:
//
//	thingctl register -server URL -user NAME -password PASS -full-name NAME
//	thingctl login    -server URL -user NAME -password PASS [-copy]
//	thingctl things   -server URL [-id N] [-reviews] [-token TOKEN]
//
// The login subcommand prints the issued bearer token; with -copy it is also
// placed on the system clipboard for pasting into other tools.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/thingfulapp/thingful-server/internal/adapter"
)

const requestTimeout = 15 * time.Second

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "register":
		err = runRegister(os.Args[2:])
	case "login":
		err = runLogin(os.Args[2:])
	case "things":
		err = runThings(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "thingctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: thingctl <register|login|things> [flags]")
}

func newClient(serverURL string) adapter.APIClient {
	return adapter.NewHTTPAPIClient(adapter.HTTPClientConfig{
		BaseURL: serverURL,
		Timeout: requestTimeout,
	})
}

func runRegister(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server base URL")
	userName := fs.String("user", "", "username for the new account")
	password := fs.String("password", "", "password for the new account")
	fullName := fs.String("full-name", "", "full name for the new account")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	user, err := newClient(*serverURL).Register(ctx, *userName, *password, *fullName)
	if err != nil {
		return err
	}

	return printJSON(user)
}

func runLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server base URL")
	userName := fs.String("user", "", "username")
	password := fs.String("password", "", "password")
	copyToken := fs.Bool("copy", false, "copy the issued token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	token, err := newClient(*serverURL).Login(ctx, *userName, *password)
	if err != nil {
		return err
	}

	fmt.Println(token)

	if *copyToken {
		if err = clipboard.WriteAll(token); err != nil {
			return fmt.Errorf("copy token to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "token copied to clipboard")
	}

	return nil
}

func runThings(args []string) error {
	fs := flag.NewFlagSet("things", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server base URL")
	thingID := fs.Int64("id", 0, "fetch a single thing by id")
	withReviews := fs.Bool("reviews", false, "fetch the thing's reviews instead of the thing itself")
	token := fs.String("token", "", "bearer token for protected endpoints")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client := newClient(*serverURL)
	if *token != "" {
		client.SetToken(*token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch {
	case *thingID == 0:
		things, err := client.ListThings(ctx)
		if err != nil {
			return err
		}
		return printJSON(things)
	case *withReviews:
		reviews, err := client.ListThingReviews(ctx, *thingID)
		if err != nil {
			return err
		}
		return printJSON(reviews)
	default:
		thing, err := client.GetThing(ctx, *thingID)
		if err != nil {
			return err
		}
		return printJSON(thing)
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
