package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/thingfulapp/thingful-server/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Register(ctx context.Context, userName, password, fullName string) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"user_name": userName,
			"password":  password,
			"full_name": fullName,
		}).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) Login(ctx context.Context, userName, password string) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"user_name": userName,
			"password":  password,
		}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.AuthToken)

	return result.AuthToken, nil
}

func (h *httpAPIClient) ListThings(ctx context.Context) ([]models.Thing, error) {
	var things []models.Thing

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&things).
		Get("/api/things")
	if err != nil {
		return nil, fmt.Errorf("list things request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return things, nil
}

func (h *httpAPIClient) GetThing(ctx context.Context, thingID int64) (models.Thing, error) {
	var thing models.Thing

	resp, err := h.authedRequest(ctx).
		SetResult(&thing).
		Get("/api/things/" + strconv.FormatInt(thingID, 10))
	if err != nil {
		return models.Thing{}, fmt.Errorf("get thing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Thing{}, err
	}

	return thing, nil
}

func (h *httpAPIClient) ListThingReviews(ctx context.Context, thingID int64) ([]models.Review, error) {
	var reviews []models.Review

	resp, err := h.authedRequest(ctx).
		SetResult(&reviews).
		Get("/api/things/" + strconv.FormatInt(thingID, 10) + "/reviews")
	if err != nil {
		return nil, fmt.Errorf("list thing reviews request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (h *httpAPIClient) GetUser(ctx context.Context, userID int64) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req
}
