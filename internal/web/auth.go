package web

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/orgball2608/newsportal/internal/account"
	"github.com/orgball2608/newsportal/internal/content"
	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/internal/seo"
	"github.com/orgball2608/newsportal/pkg/errors"
)

const (
	userCookie         = "np_user"
	registrationCookie = "np_reg"

	registrationTTL = time.Hour

	pageSignIn      = "signin"
	pageRegisterOne = "register_one"
	pageRegisterTwo = "register_two"
)

// formData is what the auth forms render with. Password fields are never
// echoed back.
type formData struct {
	Error     string
	Notice    string
	FirstName string
	LastName  string
	Email     string
	Bio       string
	Interests []domain.Interest
	Selected  map[int]bool
}

var formTitles = map[string]string{
	pageSignIn:      "Sign in",
	pageRegisterOne: "Create account",
	pageRegisterTwo: "Complete your profile",
}

func formFor(path string) string {
	switch path {
	case "/register/step-one":
		return pageRegisterOne
	case "/register/complete-profile":
		return pageRegisterTwo
	default:
		return pageSignIn
	}
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, status int, name string, data formData) {
	if name == pageRegisterTwo && data.Interests == nil {
		interests, err := s.accounts.Interests(r.Context())
		if err == nil {
			data.Interests = interests
		}
	}
	shell := s.loadShell(r.Context(), r)
	shell.Meta = seo.Page(formTitles[name], "", s.canonical(r), s.resolver)
	s.render(w, status, name, page{Shell: *shell, Body: data})
}

func userID(r *http.Request) string {
	c, err := r.Cookie(userCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *Server) setCookie(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   strings.HasPrefix(s.cfg.App.PublicURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func encodeSession(sess content.Session) (string, error) {
	b, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func decodeSession(r *http.Request) (content.Session, bool) {
	c, err := r.Cookie(registrationCookie)
	if err != nil || c.Value == "" {
		return content.Session{}, false
	}
	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return content.Session{}, false
	}
	var sess content.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return content.Session{}, false
	}
	return sess, true
}

func (s *Server) handleSignInForm(w http.ResponseWriter, r *http.Request) {
	if userID(r) != "" {
		http.Redirect(w, r, "/my-news", http.StatusSeeOther)
		return
	}
	var data formData
	if r.URL.Query().Get("registered") != "" {
		data.Notice = "Your account is ready. Sign in to continue."
	}
	s.renderForm(w, r, http.StatusOK, pageSignIn, data)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	creds := domain.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	res, err := s.accounts.SignIn(r.Context(), creds)
	if err != nil {
		s.renderForm(w, r, errors.HTTPStatus(err), pageSignIn, formData{
			Error: account.UserMessage(err, account.SignInFallback),
			Email: creds.Email,
		})
		return
	}

	s.setCookie(w, userCookie, res.UserID, 30*24*time.Hour)
	s.logger.Info("Reader signed in", "user_id", res.UserID)
	http.Redirect(w, r, "/my-news", http.StatusSeeOther)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	s.clearCookie(w, userCookie)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, http.StatusOK, pageRegisterOne, formData{})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	reg := domain.Registration{
		FirstName:       r.PostFormValue("first_name"),
		LastName:        r.PostFormValue("last_name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		Agreement:       r.PostFormValue("agreement") != "",
	}
	back := formData{FirstName: reg.FirstName, LastName: reg.LastName, Email: reg.Email}

	sess, err := s.accounts.RegisterStepOne(r.Context(), reg)
	if err != nil {
		back.Error = account.UserMessage(err, account.FallbackMessage)
		s.renderForm(w, r, errors.HTTPStatus(err), pageRegisterOne, back)
		return
	}

	value, err := encodeSession(sess)
	if err != nil {
		s.logger.Error("Failed to encode registration session", "error", err)
		back.Error = account.FallbackMessage
		s.renderForm(w, r, http.StatusInternalServerError, pageRegisterOne, back)
		return
	}
	s.setCookie(w, registrationCookie, value, registrationTTL)
	http.Redirect(w, r, "/register/complete-profile", http.StatusSeeOther)
}

func (s *Server) handleProfileForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := decodeSession(r); !ok {
		http.Redirect(w, r, "/register/step-one", http.StatusSeeOther)
		return
	}
	s.renderForm(w, r, http.StatusOK, pageRegisterTwo, formData{})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := decodeSession(r)
	if !ok {
		http.Redirect(w, r, "/register/step-one", http.StatusSeeOther)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, account.MaxProfileImage+1<<20)
	if err := r.ParseMultipartForm(account.MaxProfileImage); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
			s.renderForm(w, r, http.StatusRequestEntityTooLarge, pageRegisterTwo, formData{
				Error: fmt.Sprintf("Profile image must be at most %d MB", account.MaxProfileImage>>20),
			})
			return
		}
		s.logger.Warn("Malformed profile form", "error", err)
		s.renderForm(w, r, http.StatusBadRequest, pageRegisterTwo, formData{
			Error: account.FallbackMessage,
		})
		return
	}

	profile := domain.Profile{Bio: r.FormValue("bio")}
	back := formData{Bio: profile.Bio, Selected: map[int]bool{}}
	for _, v := range r.MultipartForm.Value["interests"] {
		id, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		profile.Interests = append(profile.Interests, id)
		back.Selected[id] = true
	}

	if file, header, err := r.FormFile("profile_image"); err == nil {
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			back.Error = account.FallbackMessage
			s.renderForm(w, r, http.StatusBadRequest, pageRegisterTwo, back)
			return
		}
		profile.ImageName = header.Filename
		profile.ImageContent = data
	}

	if err := s.accounts.CompleteProfile(r.Context(), sess, profile); err != nil {
		back.Error = account.UserMessage(err, account.FallbackMessage)
		s.renderForm(w, r, errors.HTTPStatus(err), pageRegisterTwo, back)
		return
	}

	s.clearCookie(w, registrationCookie)
	http.Redirect(w, r, "/signin?registered=1", http.StatusSeeOther)
}

type myNewsView struct {
	Items []domain.TimelineItem
	Error string
}

func (s *Server) handleMyNews(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	var view myNewsView
	shell := s.loadShell(r.Context(), r)
	items, err := s.accounts.Timeline(r.Context(), uid)
	status := http.StatusOK
	if err != nil {
		status = errors.HTTPStatus(err)
		view.Error = account.UserMessage(err, "Could not load your news.")
	}
	view.Items = items

	shell.Meta = seo.Page("My news", "", s.canonical(r), s.resolver)
	s.render(w, status, "my_news", page{Shell: *shell, Body: view})
}
