// Command resolvecli is a small terminal client for the ResolveNow API:
// register, log in, submit complaints, and list them, with the session
// persisted between invocations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Thanuja200/Resolve-now/pkg/client"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: resolvecli <command> [flags]

Commands:
  register  -name NAME -email EMAIL -password PASSWORD
  login     -email EMAIL -password PASSWORD
  submit    -title TITLE -description TEXT -category CAT [-priority PRIO]
  mine      list your own complaints
  all       list every complaint (admin only)
  whoami    show the logged-in user
  logout    clear the saved session

Environment:
  RESOLVENOW_URL           server base URL (default http://localhost:5000)
  RESOLVENOW_SESSION_FILE  session path (default <user config dir>/resolvenow/session.json)
`)
	os.Exit(2)
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
	}

	baseURL := os.Getenv("RESOLVENOW_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	store, err := client.NewSessionStore(os.Getenv("RESOLVENOW_SESSION_FILE"))
	if err != nil {
		fatal(err)
	}
	api := client.New(baseURL, store)

	switch os.Args[1] {
	case "register":
		cmdRegister(api, os.Args[2:])
	case "login":
		cmdLogin(api, os.Args[2:])
	case "submit":
		cmdSubmit(api, os.Args[2:])
	case "mine":
		cmdList(api, false)
	case "all":
		cmdList(api, true)
	case "whoami":
		cmdWhoami(api)
	case "logout":
		if err := api.Logout(); err != nil {
			fatal(err)
		}
		fmt.Println("logged out")
	default:
		usage()
	}
}

func cmdRegister(api *client.Client, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	_ = fs.Parse(args)

	user, err := api.Register(*name, *email, *password)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("registered %s <%s>, you can now log in\n", user.Name, user.Email)
}

func cmdLogin(api *client.Client, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	_ = fs.Parse(args)

	sess, err := api.Login(*email, *password)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("logged in as %s\n", sess)
}

func cmdSubmit(api *client.Client, args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	title := fs.String("title", "", "complaint title")
	description := fs.String("description", "", "complaint description")
	category := fs.String("category", "", "Electricity, Water, Road, or Internet")
	priority := fs.String("priority", "Medium", "Low, Medium, or High")
	_ = fs.Parse(args)

	created, err := api.SubmitComplaint(client.ComplaintInput{
		Title:       *title,
		Description: *description,
		Category:    *category,
		Priority:    *priority,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("complaint submitted: %s [%s/%s] status=%s\n",
		created.Title, created.Category, created.Priority, created.Status)
}

func cmdList(api *client.Client, all bool) {
	var (
		complaints []client.Complaint
		err        error
	)
	if all {
		complaints, err = api.AllComplaints()
	} else {
		complaints, err = api.MyComplaints()
	}
	if err != nil {
		fatal(err)
	}

	if len(complaints) == 0 {
		fmt.Println("no complaints found")
		return
	}
	for _, c := range complaints {
		fmt.Printf("%-12s %-8s %-10s %s  %s\n",
			c.Category, c.Priority, c.Status, c.CreatedAt.Format("2006-01-02"), c.Title)
		if all {
			fmt.Printf("             submitted by %s <%s>\n", c.Name, c.Email)
		}
	}
}

func cmdWhoami(api *client.Client) {
	sess, err := api.CurrentSession()
	if err != nil {
		fatal(err)
	}
	if sess == nil {
		fmt.Println("not logged in")
		return
	}
	fmt.Println(sess)
}

func fatal(err error) {
	if errors.Is(err, client.ErrNotLoggedIn) {
		fmt.Fprintln(os.Stderr, "please log in first: resolvecli login -email ... -password ...")
	} else {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(1)
}
