package controllers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"inkwell/app/media"
	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories/mock"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fixture wires mock-backed services and a router mirroring the production
// route table, for end-to-end handler tests without a real database.
type fixture struct {
	Router *mux.Router
	Store  *media.MemStore

	PostRepo    *mock.PostRepository
	CommentRepo *mock.CommentRepository
	ContactRepo *mock.ContactMessageRepository
	UserRepo    *mock.UserRepository

	AuthService *services.AuthService
	Token       string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		Store:       media.NewMemStore(),
		PostRepo:    mock.NewPostRepository(),
		CommentRepo: mock.NewCommentRepository(),
		ContactRepo: mock.NewContactMessageRepository(),
		UserRepo:    mock.NewUserRepository(),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.User{Email: "admin@example.com", PasswordHash: string(hash)}
	admin.BeforeCreate()
	require.NoError(t, f.UserRepo.Create(admin))

	log := zerolog.Nop()
	postService := services.NewPostService(f.PostRepo, f.Store, log)
	commentService := services.NewCommentService(f.CommentRepo, f.PostRepo)
	contactService := services.NewContactService(f.ContactRepo)
	settingsService := services.NewSettingsService(mock.NewSettingsRepository(), f.Store, log)
	userService := services.NewUserService(f.UserRepo)
	f.AuthService = services.NewAuthService(f.UserRepo, "test-secret")

	f.Token, err = f.AuthService.Login("admin@example.com", "hunter22")
	require.NoError(t, err)

	posts := NewPostController(postService)
	comments := NewCommentController(commentService)
	auth := NewAuthController(f.AuthService)
	settings := NewSettingsController(settingsService)
	profile := NewProfileController(userService)
	contact := NewContactController(contactService)

	requireAuth := middleware.RequireAuth(f.AuthService)

	router := mux.NewRouter()
	router.HandleFunc("/posts", posts.Index).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}", posts.Show).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}/comments", comments.Index).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}/comments", comments.Create).Methods("POST")
	router.HandleFunc("/settings", settings.Show).Methods("GET")
	router.HandleFunc("/contact", contact.Create).Methods("POST")
	router.HandleFunc("/login", auth.Login).Methods("POST")

	router.Handle("/check-auth", requireAuth(http.HandlerFunc(auth.CheckAuth))).Methods("GET")
	router.Handle("/add-post", requireAuth(http.HandlerFunc(posts.Create))).Methods("POST")
	router.Handle("/posts/{id:[0-9]+}", requireAuth(http.HandlerFunc(posts.Update))).Methods("PUT")
	router.Handle("/posts/{id:[0-9]+}", requireAuth(http.HandlerFunc(posts.Delete))).Methods("DELETE")
	router.Handle("/comments", requireAuth(http.HandlerFunc(comments.AdminIndex))).Methods("GET")
	router.Handle("/comments/{id:[0-9]+}/approve", requireAuth(http.HandlerFunc(comments.Approve))).Methods("PUT")
	router.Handle("/comments/{id:[0-9]+}", requireAuth(http.HandlerFunc(comments.Delete))).Methods("DELETE")
	router.Handle("/settings", requireAuth(http.HandlerFunc(settings.Update))).Methods("PUT")
	router.Handle("/profile", requireAuth(http.HandlerFunc(profile.Update))).Methods("PUT")
	router.Handle("/contact-messages", requireAuth(http.HandlerFunc(contact.Index))).Methods("GET")
	router.Handle("/contact-messages/{id:[0-9]+}", requireAuth(http.HandlerFunc(contact.Delete))).Methods("DELETE")

	f.Router = router
	return f
}

// multipartBody encodes form fields plus an optional file part and returns
// the body and its content type.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename, fileContentType string, fileBytes []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}

	if fileField != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+filename+`"`)
		h.Set("Content-Type", fileContentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(fileBytes))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
