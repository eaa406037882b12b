package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/treyloggins4-create/tk/internal/config"
	"github.com/treyloggins4-create/tk/internal/database"
	"github.com/treyloggins4-create/tk/internal/domain"
	"github.com/treyloggins4-create/tk/internal/identity"
	"github.com/treyloggins4-create/tk/internal/store"
	"github.com/treyloggins4-create/tk/internal/triage"
)

var statusColors = map[string]*color.Color{
	domain.StatusNew:       color.New(color.FgCyan),
	domain.StatusContacted: color.New(color.FgYellow),
	domain.StatusQuoted:    color.New(color.FgMagenta),
	domain.StatusCompleted: color.New(color.FgGreen),
	domain.StatusCancelled: color.New(color.FgRed),
}

func main() {
	username := flag.String("user", "", "operator username")
	flag.Parse()

	if _, err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	db := database.GetDB()

	reader := bufio.NewReader(os.Stdin)
	if *username == "" {
		fmt.Print("Username: ")
		line, _ := reader.ReadString('\n')
		*username = strings.TrimSpace(line)
	}
	fmt.Print("Password: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}

	ctx := context.Background()
	session, err := identity.Login(ctx, db, *username, string(pw))
	if err != nil {
		color.Red("Login failed: %v", err)
		os.Exit(1)
	}

	console := triage.NewConsole(store.NewSubmissionStore(db), session)
	if err := console.Load(ctx); err != nil {
		color.Red("Failed to load submissions: %v", err)
		os.Exit(1)
	}

	color.Green("Logged in as %s", session.User().Email)
	printSummary(console)
	fmt.Println("Commands: list | search <term> | status <filter> | set <id> <status> | summary | reload | logout")

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			printList(console)
		case "search":
			console.SetSearch(strings.Join(fields[1:], " "))
			printList(console)
		case "status":
			if len(fields) != 2 {
				color.Red("usage: status <all|%s>", strings.Join(domain.Statuses(), "|"))
				continue
			}
			console.SetStatusFilter(fields[1])
			printList(console)
		case "set":
			if len(fields) != 3 {
				color.Red("usage: set <id> <status>")
				continue
			}
			if err := console.UpdateStatus(ctx, fields[1], fields[2]); err != nil {
				color.Red("Update failed: %v", err)
				continue
			}
			color.Green("Updated %s -> %s", fields[1], fields[2])
			printList(console)
		case "summary":
			printSummary(console)
		case "reload":
			if err := console.Load(ctx); err != nil {
				color.Red("Reload failed: %v", err)
				continue
			}
			printList(console)
		case "logout", "quit", "exit":
			if err := console.Logout(ctx); err != nil {
				color.Red("Logout failed: %v", err)
			}
			return
		default:
			color.Red("unknown command: %s", fields[0])
		}
	}
}

func printSummary(console *triage.Console) {
	sum := console.Summary()
	fmt.Printf("Total: %d  New: %d  Active: %d  Completed: %d\n", sum.Total, sum.New, sum.Active, sum.Completed)
}

func printList(console *triage.Console) {
	subs := console.Visible()
	if len(subs) == 0 {
		fmt.Println("No submissions match.")
		return
	}
	for i := range subs {
		sub := &subs[i]
		c, ok := statusColors[sub.Status]
		if !ok {
			c = color.New(color.Reset)
		}
		fmt.Printf("%s  %-10s  %-25s  %-15s  %s\n",
			sub.ID, c.Sprint(sub.Status), sub.Email, sub.Phone, sub.Service)
	}
	fmt.Printf("%d shown of %d loaded\n", len(subs), len(console.All()))
}
