package contentimpl

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/orgball2608/newsportal/internal/content"
	"github.com/orgball2608/newsportal/internal/domain"
)

const csrfCookie = "csrftoken"

func (c *ClientImpl) Interests(ctx context.Context) ([]domain.Interest, error) {
	var interests []domain.Interest
	if err := c.getJSON(ctx, "/auth/user_auth/interests/", &interests); err != nil {
		return nil, fmt.Errorf("get interests: %w", err)
	}
	return interests, nil
}

// RegisterStepOne fetches a CSRF token, posts the account details and returns
// the API cookies needed by the second step.
func (c *ClientImpl) RegisterStepOne(ctx context.Context, reg domain.Registration) (content.Session, error) {
	sess, err := c.csrfSession(ctx)
	if err != nil {
		// the API accepts the post without a token when CSRF is disabled
		c.logger.Warn("Failed to fetch CSRF token", "error", err)
	}

	resp, err := c.postJSON(ctx, "/register/step-one/", reg, &sess, nil)
	if err != nil {
		return content.Session{}, fmt.Errorf("register step one: %w", err)
	}
	mergeCookies(&sess, resp.Cookies())
	return sess, nil
}

func (c *ClientImpl) RegisterStepTwo(ctx context.Context, sess content.Session, profile domain.Profile) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := w.WriteField("bio", profile.Bio); err != nil {
		return fmt.Errorf("write bio: %w", err)
	}
	for _, id := range profile.Interests {
		if err := w.WriteField("interests", strconv.Itoa(id)); err != nil {
			return fmt.Errorf("write interests: %w", err)
		}
	}
	if len(profile.ImageContent) > 0 {
		part, err := w.CreateFormFile("profile_image", profile.ImageName)
		if err != nil {
			return fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(profile.ImageContent); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/auth/register/step-two/"), &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	applySession(req, &sess)

	if _, err := c.do(req, nil); err != nil {
		return fmt.Errorf("register step two: %w", err)
	}
	return nil
}

func (c *ClientImpl) SignIn(ctx context.Context, creds domain.Credentials) (domain.SignInResult, error) {
	var result domain.SignInResult
	if _, err := c.postJSON(ctx, "/auth/signin/", creds, nil, &result); err != nil {
		return domain.SignInResult{}, fmt.Errorf("sign in: %w", err)
	}
	return result, nil
}

func (c *ClientImpl) MyNews(ctx context.Context, userID string) ([]domain.TimelineItem, error) {
	var items []domain.TimelineItem
	if err := c.getJSON(ctx, "/auth/my-news/"+escape(userID)+"/", &items); err != nil {
		return nil, fmt.Errorf("get timeline: %w", err)
	}
	return items, nil
}

func (c *ClientImpl) csrfSession(ctx context.Context) (content.Session, error) {
	sess := content.Session{Cookies: map[string]string{}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/user_auth/get-csrf-token/"), nil)
	if err != nil {
		return sess, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.do(req, nil)
	if err != nil {
		return sess, err
	}
	mergeCookies(&sess, resp.Cookies())
	return sess, nil
}

func mergeCookies(sess *content.Session, cookies []*http.Cookie) {
	if sess.Cookies == nil {
		sess.Cookies = map[string]string{}
	}
	for _, ck := range cookies {
		sess.Cookies[ck.Name] = ck.Value
		if ck.Name == csrfCookie {
			sess.CSRFToken = ck.Value
		}
	}
}

func applySession(req *http.Request, sess *content.Session) {
	if sess == nil {
		return
	}
	for name, value := range sess.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	if sess.CSRFToken != "" {
		req.Header.Set("X-CSRFToken", sess.CSRFToken)
	}
}
