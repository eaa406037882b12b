package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/treyloggins4-create/tk/internal/config"
	"github.com/treyloggins4-create/tk/internal/database"
	"github.com/treyloggins4-create/tk/internal/identity"
	"github.com/treyloggins4-create/tk/internal/intake"
	"github.com/treyloggins4-create/tk/internal/store"
)

func main() {
	var (
		name     = flag.String("name", "", "contact name")
		email    = flag.String("email", "", "contact email address")
		phone    = flag.String("phone", "", "contact phone number")
		services = flag.String("services", "", "comma-separated service tags")
		message  = flag.String("message", "", "project details (optional)")
	)
	flag.Parse()

	if _, err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	db := database.GetDB()
	form := intake.NewForm(store.NewSubmissionStore(db), identity.NewAnonymous(db))

	form.Name = *name
	form.Email = *email
	form.Phone = *phone
	form.Message = *message
	for _, tag := range strings.Split(*services, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			form.ToggleService(tag)
		}
	}

	err := form.Submit(context.Background())
	notice := form.Notice()
	if err != nil {
		color.Red(notice.Message)
		os.Exit(1)
	}
	color.Green(notice.Message)
}
