package main

import (
	"crypto/sha256"
	"fmt"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/VSTodd/contact-list/auth"
	"github.com/VSTodd/contact-list/config"
	"github.com/VSTodd/contact-list/creds"
	"github.com/VSTodd/contact-list/handlers"
	"github.com/VSTodd/contact-list/logger"
	"github.com/VSTodd/contact-list/store"
)

func main() {
	log := logger.Get(logger.InfoLevel)
	defer log.Sync()

	if err := config.Load("configs"); err != nil {
		log.Fatalw("loading config failed", "err", err)
	}

	auth.InitStore()

	contacts := store.New(config.AppConfig.ContactsFile)
	users := creds.New(config.AppConfig.CredentialsFile)

	// Both files are provisioned out of band; refuse to start without them.
	if _, err := contacts.Load(); err != nil {
		log.Fatalw("contact file unusable", "path", config.AppConfig.ContactsFile, "err", err)
	}
	if _, err := users.Load(); err != nil {
		log.Fatalw("credential file unusable", "path", config.AppConfig.CredentialsFile, "err", err)
	}

	h := handlers.New(contacts, users, log)
	router := h.Routes()

	csrfKey := sha256.Sum256([]byte(config.AppConfig.SessionKey + "csrf"))
	csrfProtect := csrf.Protect(
		csrfKey[:],
		csrf.Secure(config.AppConfig.ListenPort != 8080), // dev port runs plain HTTP
		csrf.Path("/"),
	)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.ListenIP, config.AppConfig.ListenPort)
	log.Infow("server starting", "addr", addr, "app", config.AppConfig.AppName)

	if err := http.ListenAndServe(addr, handlers.SecurityHeaders(csrfProtect(router))); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
}
