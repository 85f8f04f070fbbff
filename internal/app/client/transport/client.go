// Package transport HTTP клиент API портала.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"learninghub/internal/domain/attendance"
	"learninghub/internal/domain/catalog"
	"learninghub/internal/domain/progress"
	"learninghub/internal/domain/user"
	"learninghub/internal/utils/clock"
)

const apiPrefix = "/api/v1"

type Client struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
	buster    *CacheBuster
}

// Options параметры клиента
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Clock   clock.Clock
	// HTTPClient заменяет стандартный клиент (например, в тестах)
	HTTPClient *http.Client
}

func New(opts Options, log *slog.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		}
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.System()
	}

	return &Client{
		client:    httpClient,
		log:       log.With(slog.String("component", "http_client")),
		baseURL:   opts.BaseURL,
		token:     opts.Token,
		userAgent: "LearningHub-Client/1.0",
		buster:    NewCacheBuster(clk),
	}
}

type HealthResponse struct {
	Status  string    `json:"status"`
	Storage string    `json:"storage"`
	Time    time.Time `json:"time"`
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) Result[HealthResponse] {
	return call[HealthResponse](ctx, c, "проверка сервера", http.MethodGet, "/health", nil, nil)
}

// SaveProgress отправляет прогресс просмотра
func (c *Client) SaveProgress(ctx context.Context, req progress.SaveRequest) Result[progress.SaveResponse] {
	return call[progress.SaveResponse](ctx, c, "сохранение прогресса", http.MethodPost, "/progress", c.busted(nil), req)
}

// UserProgress прогресс пользователя на сервере
func (c *Client) UserProgress(ctx context.Context, userID string) Result[[]progress.Record] {
	res := call[progress.RecordsResponse](ctx, c, "прогресс пользователя", http.MethodGet,
		"/progress/"+url.PathEscape(userID), c.busted(nil), nil)
	if !res.IsOk() {
		return Err[[]progress.Record](res.Failure())
	}
	return Ok(res.Value().Progress)
}

// Report сводный отчет администратора
func (c *Client) Report(ctx context.Context) Result[progress.Report] {
	return call[progress.Report](ctx, c, "сводный отчет", http.MethodGet, "/admin/progress", c.busted(nil), nil)
}

// UpsertUser регистрирует сотрудника на сервере
func (c *Client) UpsertUser(ctx context.Context, req user.UpsertRequest) Result[user.User] {
	res := call[user.UpsertResponse](ctx, c, "регистрация пользователя", http.MethodPost, "/users", nil, req)
	if !res.IsOk() {
		return Err[user.User](res.Failure())
	}
	return Ok(res.Value().User)
}

// SetAttendance отмечает присутствие за сегодня
func (c *Client) SetAttendance(ctx context.Context, employeeID string, present bool) Result[user.User] {
	res := call[user.AttendanceResponse](ctx, c, "отметка присутствия", http.MethodPost,
		"/users/"+url.PathEscape(employeeID)+"/attendance", c.busted(nil),
		user.AttendanceRequest{Attendance: present})
	if !res.IsOk() {
		return Err[user.User](res.Failure())
	}
	if !res.Value().Success {
		return Err[user.User](&Error{Kind: KindRejected, Op: "отметка присутствия", Status: http.StatusOK, Message: "success=false"})
	}
	return Ok(res.Value().User)
}

// AttendanceLogs журнал присутствия за месяц YYYY-MM
func (c *Client) AttendanceLogs(ctx context.Context, employeeID, month string) Result[[]attendance.Log] {
	q := url.Values{}
	q.Set("month", month)

	res := call[attendance.LogsResponse](ctx, c, "журнал присутствия", http.MethodGet,
		"/users/"+url.PathEscape(employeeID)+"/attendance/logs", c.busted(q), nil)
	if !res.IsOk() {
		return Err[[]attendance.Log](res.Failure())
	}
	return Ok(res.Value().Logs)
}

func (c *Client) Categories(ctx context.Context) Result[[]catalog.Category] {
	res := call[catalog.CategoriesResponse](ctx, c, "разделы", http.MethodGet, "/categories", nil, nil)
	if !res.IsOk() {
		return Err[[]catalog.Category](res.Failure())
	}
	return Ok(res.Value().Categories)
}

func (c *Client) Videos(ctx context.Context, categoryID string) Result[[]catalog.Video] {
	res := call[catalog.VideosResponse](ctx, c, "видео раздела", http.MethodGet, "/videos/"+url.PathEscape(categoryID), nil, nil)
	if !res.IsOk() {
		return Err[[]catalog.Video](res.Failure())
	}
	return Ok(res.Value().Videos)
}

func (c *Client) busted(q url.Values) url.Values {
	if q == nil {
		q = url.Values{}
	}
	q.Set("v", c.buster.Next())
	return q
}

func call[T any](ctx context.Context, c *Client, op, method, path string, query url.Values, body any) Result[T] {
	resp, err := c.doRequest(ctx, method, path, query, body)
	if err != nil {
		return Err[T](&Error{Kind: KindNetwork, Op: op, Err: err})
	}

	var out T
	if terr := c.parseResponse(op, resp, &out); terr != nil {
		return Err[T](terr)
	}
	return Ok(out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	target := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug("Отправка запроса", slog.String("method", method), slog.String("url", req.URL.String()))

	return c.client.Do(req)
}

func (c *Client) parseResponse(op string, resp *http.Response, result any) *Error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Status: resp.StatusCode, Err: fmt.Errorf("ошибка чтения ответа: %w", err)}
	}

	c.log.Debug("Получен ответ", slog.String("op", op), slog.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &errResp)
		return &Error{Kind: KindRejected, Op: op, Status: resp.StatusCode, Message: errResp.Error}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &Error{Kind: KindDecode, Op: op, Status: resp.StatusCode, Err: err}
	}

	return nil
}
