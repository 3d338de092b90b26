package rentello

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"rentello/config"
	"rentello/infras/otel"
	"rentello/shared/constant"
	"rentello/shared/failure"
)

var (
	// ErrUnauthorized is returned for any remote 401. The session layer reacts
	// by clearing the stored credential and forcing re-authentication.
	ErrUnauthorized = errors.New("rentello: unauthorized")
)

const otelScopeName = "rentello"

// Client is the typed surface of the remote Rentello API. The remote is a
// black box: only its request/response contracts matter here.
type Client interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) error
	Profile(ctx context.Context, token string) (User, error)
	ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error

	PricingBreakdown(ctx context.Context, token string, vehicleID int64, startDate, endDate string) (PricingBreakdown, error)

	AvailableVehicles(ctx context.Context, token, startDate, endDate string) ([]Vehicle, error)
	Vehicle(ctx context.Context, token string, id int64) (Vehicle, error)
	Locations(ctx context.Context, token string) ([]Location, error)

	IsVehicleAvailable(ctx context.Context, token string, vehicleID int64, startDate, endDate string) (bool, error)
	CreateRental(ctx context.Context, token string, req CreateRentalRequest) (CreateRentalResult, error)
	MyRentals(ctx context.Context, token string) ([]Rental, error)
	UpdateRentalStatus(ctx context.Context, token string, rentalID int64, statusID int) (Rental, error)

	Users(ctx context.Context, token string, page, size int, sortBy, sortDirection string) (UserPage, error)
	SearchUsers(ctx context.Context, token, term string, page, size int) (UserPage, error)
	UpdateUserRole(ctx context.Context, token string, userID, roleID int64) (AdminActionResult, error)
	ToggleUserStatus(ctx context.Context, token string, userID int64) (AdminActionResult, error)
	Roles(ctx context.Context, token string) ([]Role, error)
	DashboardStats(ctx context.Context, token string) (DashboardStats, error)
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		baseURL: cfg.Rentello.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.Rentello.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

func (c *clientImpl) Login(ctx context.Context, req LoginRequest) (res LoginResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodPost, "/auth/login", "", req, &res)

	return res, err
}

func (c *clientImpl) Register(ctx context.Context, req RegisterRequest) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.do(ctx, http.MethodPost, "/auth/register", "", req, nil)
}

func (c *clientImpl) Profile(ctx context.Context, token string) (res User, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Profile")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &res)

	return res, err
}

func (c *clientImpl) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	form := url.Values{}
	form.Set("oldPassword", oldPassword)
	form.Set("newPassword", newPassword)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/change-password", bytes.NewBufferString(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build change-password request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)
	setBearer(httpReq, token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("change-password request failed: %w", err)
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

func (c *clientImpl) PricingBreakdown(ctx context.Context, token string, vehicleID int64, startDate, endDate string) (res PricingBreakdown, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".PricingBreakdown")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set("vehicleId", strconv.FormatInt(vehicleID, 10))
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	err = c.do(ctx, http.MethodGet, "/pricing/breakdown?"+query.Encode(), token, nil, &res)

	return res, err
}

func (c *clientImpl) AvailableVehicles(ctx context.Context, token, startDate, endDate string) (res []Vehicle, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".AvailableVehicles")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}

	path := "/vehicles/available"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	err = c.do(ctx, http.MethodGet, path, token, nil, &res)

	return res, err
}

func (c *clientImpl) Vehicle(ctx context.Context, token string, id int64) (res Vehicle, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Vehicle")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/vehicles/"+strconv.FormatInt(id, 10), token, nil, &res)

	return res, err
}

func (c *clientImpl) Locations(ctx context.Context, token string) (res []Location, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Locations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/locations", token, nil, &res)

	return res, err
}

func (c *clientImpl) IsVehicleAvailable(ctx context.Context, token string, vehicleID int64, startDate, endDate string) (available bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".IsVehicleAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set("vehicleId", strconv.FormatInt(vehicleID, 10))
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	err = c.do(ctx, http.MethodGet, "/database-integration/functions/is-vehicle-available?"+query.Encode(), token, nil, &available)

	return available, err
}

func (c *clientImpl) CreateRental(ctx context.Context, token string, req CreateRentalRequest) (res CreateRentalResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".CreateRental")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodPost, "/database-integration/stored-procedures/create-rental", token, req, &res)

	return res, err
}

func (c *clientImpl) MyRentals(ctx context.Context, token string) (res []Rental, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".MyRentals")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/rentals/my-rentals", token, nil, &res)

	return res, err
}

func (c *clientImpl) UpdateRentalStatus(ctx context.Context, token string, rentalID int64, statusID int) (res Rental, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".UpdateRentalStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	path := "/rentals/" + strconv.FormatInt(rentalID, 10) + "/status"
	err = c.do(ctx, http.MethodPut, path, token, UpdateRentalStatusRequest{StatusID: statusID}, &res)

	return res, err
}

func (c *clientImpl) Users(ctx context.Context, token string, page, size int, sortBy, sortDirection string) (res UserPage, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Users")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if sortBy != "" {
		query.Set("sortBy", sortBy)
	}
	if sortDirection != "" {
		query.Set("sortDirection", sortDirection)
	}

	err = c.do(ctx, http.MethodGet, "/admin/users?"+query.Encode(), token, nil, &res)

	return res, err
}

func (c *clientImpl) SearchUsers(ctx context.Context, token, term string, page, size int) (res UserPage, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".SearchUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{}
	query.Set("searchTerm", term)
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	err = c.do(ctx, http.MethodGet, "/admin/users/search?"+query.Encode(), token, nil, &res)

	return res, err
}

func (c *clientImpl) UpdateUserRole(ctx context.Context, token string, userID, roleID int64) (res AdminActionResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".UpdateUserRole")
	defer scope.End()
	defer scope.TraceIfError(err)

	path := "/admin/users/" + strconv.FormatInt(userID, 10) + "/role/" + strconv.FormatInt(roleID, 10)
	err = c.do(ctx, http.MethodPut, path, token, nil, &res)

	return res, err
}

func (c *clientImpl) ToggleUserStatus(ctx context.Context, token string, userID int64) (res AdminActionResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".ToggleUserStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	path := "/admin/users/" + strconv.FormatInt(userID, 10) + "/toggle-status"
	err = c.do(ctx, http.MethodPut, path, token, nil, &res)

	return res, err
}

func (c *clientImpl) Roles(ctx context.Context, token string) (res []Role, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".Roles")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/admin/roles", token, nil, &res)

	return res, err
}

func (c *clientImpl) DashboardStats(ctx context.Context, token string) (res DashboardStats, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+".DashboardStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/admin/dashboard/stats", token, nil, &res)

	return res, err
}

// do issues one JSON request against the remote API and decodes the response
// into out when out is non-nil.
func (c *clientImpl) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	setBearer(httpReq, token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
	}

	return nil
}

func (c *clientImpl) checkStatus(resp *http.Response) error {
	if resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	msg := remoteMessage(resp.Body)
	if msg == "" {
		msg = resp.Status
	}

	log.Warn().Int("status", resp.StatusCode).Str("message", msg).Msg("remote API call failed")

	return &failure.Failure{Code: resp.StatusCode, Message: msg}
}

// remoteMessage pulls a human-readable message out of an error payload, if any.
func remoteMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}

	if payload.Message != "" {
		return payload.Message
	}

	return payload.Error
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}
}
