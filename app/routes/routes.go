package routes

import (
	"net/http"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// APIPrefix is the fixed version prefix every endpoint lives under.
const APIPrefix = "/api/v1.0.0"

// Deps carries everything the router needs.
type Deps struct {
	Posts    *controllers.PostController
	Comments *controllers.CommentController
	Auth     *controllers.AuthController
	Settings *controllers.SettingsController
	Profile  *controllers.ProfileController
	Contact  *controllers.ContactController

	AuthService *services.AuthService
	Log         zerolog.Logger

	// UploadsDir, when non-empty, is served statically under /uploads/.
	UploadsDir string
}

// Setup defines the application's routes and returns a router. Every
// mutating endpoint sits behind the auth gate, post writes included.
func Setup(deps Deps) *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.Logger(deps.Log))
	router.Use(middleware.Recoverer(deps.Log))

	api := router.PathPrefix(APIPrefix).Subrouter()
	requireAuth := middleware.RequireAuth(deps.AuthService)

	// Public reads
	api.HandleFunc("/posts", deps.Posts.Index).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", deps.Posts.Show).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}/comments", deps.Comments.Index).Methods("GET")
	api.HandleFunc("/settings", deps.Settings.Show).Methods("GET")

	// Public writes
	api.HandleFunc("/posts/{id:[0-9]+}/comments", deps.Comments.Create).Methods("POST")
	api.HandleFunc("/contact", deps.Contact.Create).Methods("POST")
	api.HandleFunc("/login", deps.Auth.Login).Methods("POST")

	// Admin surface
	api.Handle("/check-auth", requireAuth(http.HandlerFunc(deps.Auth.CheckAuth))).Methods("GET")
	api.Handle("/add-post", requireAuth(http.HandlerFunc(deps.Posts.Create))).Methods("POST")
	api.Handle("/posts/{id:[0-9]+}", requireAuth(http.HandlerFunc(deps.Posts.Update))).Methods("PUT")
	api.Handle("/posts/{id:[0-9]+}", requireAuth(http.HandlerFunc(deps.Posts.Delete))).Methods("DELETE")
	api.Handle("/comments", requireAuth(http.HandlerFunc(deps.Comments.AdminIndex))).Methods("GET")
	api.Handle("/comments/{id:[0-9]+}/approve", requireAuth(http.HandlerFunc(deps.Comments.Approve))).Methods("PUT")
	api.Handle("/comments/{id:[0-9]+}", requireAuth(http.HandlerFunc(deps.Comments.Delete))).Methods("DELETE")
	api.Handle("/settings", requireAuth(http.HandlerFunc(deps.Settings.Update))).Methods("PUT")
	api.Handle("/profile", requireAuth(http.HandlerFunc(deps.Profile.Update))).Methods("PUT")
	api.Handle("/contact-messages", requireAuth(http.HandlerFunc(deps.Contact.Index))).Methods("GET")
	api.Handle("/contact-messages/{id:[0-9]+}", requireAuth(http.HandlerFunc(deps.Contact.Delete))).Methods("DELETE")

	// Uploaded files are addressed by bare filename; clients build the URL.
	if deps.UploadsDir != "" {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadsDir))))
	}

	return router
}
