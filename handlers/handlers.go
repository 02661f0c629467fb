// Package handlers implements the HTTP surface: category listings, contact
// cards, the add/edit/delete flows, and sign-in/out.
package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"

	"github.com/VSTodd/contact-list/auth"
	"github.com/VSTodd/contact-list/config"
	"github.com/VSTodd/contact-list/creds"
	"github.com/VSTodd/contact-list/format"
	"github.com/VSTodd/contact-list/logger"
	"github.com/VSTodd/contact-list/models"
	"github.com/VSTodd/contact-list/store"
	"github.com/VSTodd/contact-list/validate"
)

//go:embed templates
var templatesFS embed.FS

// Handler holds the dependencies shared by all routes.
type Handler struct {
	contacts      *store.Store
	users         *creds.Store
	log           *logger.Logger
	signinLimiter *rateLimiter
}

func New(contacts *store.Store, users *creds.Store, log *logger.Logger) *Handler {
	return &Handler{
		contacts:      contacts,
		users:         users,
		log:           log,
		signinLimiter: newRateLimiter(),
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Get("/new", h.NewForm)
	r.Post("/new", h.Create)
	r.Get("/contacts/{category}", h.List)
	r.Get("/contacts/entry/{name}", h.Show)
	r.Get("/contacts/entry/{name}/edit", h.EditForm)
	r.Post("/edit", h.Update)
	r.Post("/contacts/entry/{name}/delete", h.Delete)
	r.Get("/users/signin", h.SignInForm)
	r.Post("/users/signin", h.SignIn)
	r.Post("/users/signout", h.SignOut)

	return r
}

// contactForm echoes submitted fields back into a re-rendered form.
type contactForm struct {
	Name         string
	Phone        string
	Email        string
	Category     string
	OriginalName string
}

func formFromRequest(r *http.Request) contactForm {
	return contactForm{
		Name:         r.FormValue("name"),
		Phone:        r.FormValue("phone"),
		Email:        r.FormValue("email"),
		Category:     r.FormValue("type"),
		OriginalName: r.FormValue("original_name"),
	}
}

func (f contactForm) fields() validate.Fields {
	return validate.Fields{Name: f.Name, Phone: f.Phone, Email: f.Email, Category: f.Category}
}

// pathName returns the decoded {name} path parameter, or "".
func pathName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

func entryPath(name string) string {
	return "/contacts/entry/" + url.PathEscape(name)
}

// requireSignedIn guards state-mutating and form-rendering routes. Signed-out
// requests get a flash and a redirect: to the entry view when the request
// names a contact, otherwise home. Storage is never touched on this path.
func (h *Handler) requireSignedIn(w http.ResponseWriter, r *http.Request) bool {
	if auth.CurrentUser(r) != "" {
		return true
	}

	auth.SetFlash(w, r, "You must be signed in to perform that action.")

	name := pathName(r)
	if name == "" {
		name = r.FormValue("name")
	}
	if name != "" {
		http.Redirect(w, r, entryPath(name), http.StatusFound)
	} else {
		http.Redirect(w, r, "/", http.StatusFound)
	}
	return false
}

// loadContacts wraps Store.Load with the 500 response for the fatal storage
// class; the file going bad mid-flight should not crash the process.
func (h *Handler) loadContacts(w http.ResponseWriter) ([]models.Contact, bool) {
	contacts, err := h.contacts.Load()
	if err != nil {
		h.log.Errorw("loading contacts failed", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return contacts, true
}

func (h *Handler) saveContacts(w http.ResponseWriter, contacts []models.Contact) bool {
	if err := h.contacts.Save(contacts); err != nil {
		h.log.Errorw("saving contacts failed", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return false
	}
	return true
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", http.StatusOK, map[string]any{})
}

// listings maps the route token to the category filter ("" = no filter) and
// the page title.
var listings = map[string]struct {
	category models.Category
	title    string
}{
	"all":     {"", "Contacts (All)"},
	"friends": {models.CategoryFriend, "Contacts - Friends"},
	"family":  {models.CategoryFamily, "Contacts - Family"},
	"work":    {models.CategoryWork, "Contacts - Work"},
	"other":   {models.CategoryOther, "Contacts - Other"},
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	listing, ok := listings[chi.URLParam(r, "category")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	contacts, ok := h.loadContacts(w)
	if !ok {
		return
	}
	if listing.category != "" {
		contacts = slices.DeleteFunc(contacts, func(c models.Contact) bool {
			return c.Category != listing.category
		})
	}
	// Presentation order is alphabetical; disk order is insertion order.
	slices.SortFunc(contacts, func(a, b models.Contact) int {
		return strings.Compare(a.Name, b.Name)
	})

	h.render(w, r, "contacts.html", http.StatusOK, map[string]any{
		"ListTitle": listing.title,
		"Contacts":  contacts,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	contacts, ok := h.loadContacts(w)
	if !ok {
		return
	}

	name := pathName(r)
	var entry models.Contact
	for _, c := range contacts {
		// Last match wins when duplicates exist.
		if c.Name == name {
			entry = c
		}
	}

	h.render(w, r, "contact.html", http.StatusOK, map[string]any{"Entry": entry})
}

func (h *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}
	h.render(w, r, "new.html", http.StatusOK, map[string]any{"Form": contactForm{}})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	form := formFromRequest(r)
	contacts, ok := h.loadContacts(w)
	if !ok {
		return
	}

	if msg := validate.ForCreate(form.fields(), contacts); msg != "" {
		h.render(w, r, "new.html", http.StatusUnprocessableEntity, map[string]any{
			"Message": msg,
			"Form":    form,
		})
		return
	}

	contact := models.Contact{
		Name:     format.Name(form.Name),
		Phone:    format.Phone(form.Phone),
		Email:    form.Email,
		Category: models.Category(form.Category),
	}
	if !h.saveContacts(w, append(contacts, contact)) {
		return
	}

	h.log.Infow("contact added", "name", contact.Name)
	auth.SetFlash(w, r, "Contact '"+contact.Name+"' added")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	contacts, ok := h.loadContacts(w)
	if !ok {
		return
	}

	name := pathName(r)
	var entry models.Contact
	for _, c := range contacts {
		if c.Name == name {
			entry = c
		}
	}

	// The hidden original name identifies the record to replace on submit.
	h.render(w, r, "edit.html", http.StatusOK, map[string]any{
		"Form": contactForm{
			Name:         entry.Name,
			Phone:        entry.Phone,
			Email:        entry.Email,
			Category:     string(entry.Category),
			OriginalName: entry.Name,
		},
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	form := formFromRequest(r)
	if msg := validate.ForEdit(form.fields()); msg != "" {
		h.render(w, r, "edit.html", http.StatusUnprocessableEntity, map[string]any{
			"Message": msg,
			"Form":    form,
		})
		return
	}

	contacts, ok := h.loadContacts(w)
	if !ok {
		return
	}
	contacts = slices.DeleteFunc(contacts, func(c models.Contact) bool {
		return c.Name == form.OriginalName
	})
	contact := models.Contact{
		Name:     format.Name(form.Name),
		Phone:    format.Phone(form.Phone),
		Email:    form.Email,
		Category: models.Category(form.Category),
	}
	if !h.saveContacts(w, append(contacts, contact)) {
		return
	}

	h.log.Infow("contact edited", "name", contact.Name, "was", form.OriginalName)
	auth.SetFlash(w, r, "Contact '"+contact.Name+"' edited.")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.requireSignedIn(w, r) {
		return
	}

	contacts, ok := h.loadContacts(w)
	if !ok {
		return
	}

	// Every record with this name goes, not just the first.
	name := pathName(r)
	contacts = slices.DeleteFunc(contacts, func(c models.Contact) bool {
		return c.Name == name
	})
	if !h.saveContacts(w, contacts) {
		return
	}

	h.log.Infow("contact deleted", "name", name)
	auth.SetFlash(w, r, "Contact '"+name+"' deleted.")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) SignInForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signin.html", http.StatusOK, map[string]any{"Username": ""})
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if !h.signinLimiter.Allow(ip) {
		h.render(w, r, "signin.html", http.StatusTooManyRequests, map[string]any{
			"Message":  "Too many failed sign-in attempts. Try again later.",
			"Username": r.FormValue("username"),
		})
		return
	}

	credentials, err := h.users.Load()
	if err != nil {
		h.log.Errorw("loading credentials failed", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	username := r.FormValue("username")
	if !credentials.Verify(username, r.FormValue("password")) {
		h.signinLimiter.RecordFailure(ip)
		h.log.Infow("sign-in rejected", "username", username, "ip", ip)
		h.render(w, r, "signin.html", http.StatusUnprocessableEntity, map[string]any{
			"Message":  "Invalid credentials",
			"Username": username,
		})
		return
	}

	h.signinLimiter.Reset(ip)
	auth.SetUser(w, r, username)
	auth.SetFlash(w, r, "Welcome!")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	auth.ClearUser(w, r)
	auth.SetFlash(w, r, "You have been signed out.")
	http.Redirect(w, r, "/", http.StatusFound)
}

var templateFuncs = template.FuncMap{
	"capitalize": func(c models.Category) string { return format.Capitalize(string(c)) },
	"digits":     format.Digits,
	"pathEscape": url.PathEscape,
}

// render draws the named page inside the layout. The pending flash message
// fills the layout's message slot unless the handler already set one.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, data map[string]any) {
	tmpl, err := template.New(name).Funcs(templateFuncs).
		ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		h.log.Errorw("parsing templates failed", "template", name, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, set := data["Message"]; !set {
		data["Message"] = auth.PopFlash(w, r)
	}
	data["AppName"] = config.AppConfig.AppName
	data["User"] = auth.CurrentUser(r)
	data["Categories"] = models.Categories()
	data["csrfField"] = csrf.TemplateField(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		h.log.Errorw("rendering template failed", "template", name, "err", err)
	}
}
