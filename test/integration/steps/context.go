// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/expense-daddy/backend/config"
	"github.com/expense-daddy/backend/internal/application/adapter"
	"github.com/expense-daddy/backend/internal/infra/dependency"
	"github.com/expense-daddy/backend/internal/integration/persistence"
	"github.com/expense-daddy/backend/internal/integration/persistence/model"
	"github.com/expense-daddy/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string
	accessToken    string
	saved          map[string]string

	// Storage
	backend string
	db      *mock.Db
	redis   *redis.Client
	kv      adapter.KeyValueStore
	clock   *mock.Time

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			saved:          make(map[string]string),
			backend:        config.BackendSQLite,
			db:             mock.NewDb(map[string]any{"kv_entries": &model.KeyValueModel{}}),
			redis:          mock.NewRedis(),
			clock:          mock.NewTime(),
			cfg: &config.Config{
				Storage: config.StorageConfig{Backend: config.BackendSQLite},
				Backup: config.BackupConfig{
					ImportMaxAttempts: 0,
					ImportWindow:      time.Minute,
					MaxImportBytes:    1 << 20,
				},
			},
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(tc.redis); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerStorageSteps(ctx)
}

// registerSetupSteps registers steps that configure the server before it starts.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the storage backend is "([^"]*)"$`, theStorageBackendIs)
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^authentication is required$`, authenticationIsRequired)
	ctx.Step(`^backup imports are limited to (\d+) per minute$`, backupImportsAreLimitedTo)
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I send the last response body as a "([^"]*)" request to "([^"]*)"$`, iSendTheLastResponseBodyTo)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I am authenticated with an expired token$`, iAmAuthenticatedWithAnExpiredToken)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should be "([^"]*)"$`, theResponseHeaderShouldBe)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
}

// registerStorageSteps registers steps that inspect or reset the storage backend directly.
func registerStorageSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the stored collection "([^"]*)" should contain (\d+) records?$`, theStoredCollectionShouldContain)
	ctx.Step(`^the stored collection "([^"]*)" should not exist$`, theStoredCollectionShouldNotExist)
	ctx.Step(`^the db should contain (\d+) objects? in the "([^"]*)" table$`, theDBShouldContainObjectsInTable)
	ctx.Step(`^the storage is wiped$`, theStorageIsWiped)
}

// Setup steps

func theStorageBackendIs(ctx context.Context, backend string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.server != nil {
		return fmt.Errorf("storage backend must be chosen before the server starts")
	}
	switch backend {
	case config.BackendSQLite, config.BackendRedis:
		tc.backend = backend
		tc.cfg.Storage.Backend = backend
		return nil
	default:
		return fmt.Errorf("unsupported storage backend in tests: %s", backend)
	}
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.clock.SetCurrentTime(now)
	return nil
}

func authenticationIsRequired(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.cfg.Auth.JWTSecret = testJWTSecret
	return nil
}

func backupImportsAreLimitedTo(ctx context.Context, attempts int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.cfg.Backup.ImportMaxAttempts = attempts
	tc.cfg.Backup.ImportWindow = time.Minute
	return nil
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.server != nil {
		return nil
	}

	switch tc.backend {
	case config.BackendRedis:
		tc.kv = persistence.NewRedisStore(tc.redis, "")
	default:
		tc.kv = persistence.NewSQLStore(tc.db.DbConn, "")
	}

	injector := dependency.NewInjector(tc.cfg, tc.kv, tc.backend, tc.clock)
	tc.server = httptest.NewServer(injector.Router.Setup("test"))
	return nil
}

// API steps

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return sendRequest(ctx, method, endpoint, []byte(tc.expand(body.Content)))
}

func iSendTheLastResponseBodyTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	return sendRequest(ctx, method, endpoint, bytes.Clone(tc.responseBody))
}

func sendRequest(ctx context.Context, method, endpoint string, body []byte) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.server == nil {
		return fmt.Errorf("test server is not running")
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return nil
}

func iAmAuthenticated(ctx context.Context) error {
	return authenticate(ctx, time.Now().Add(time.Hour))
}

func iAmAuthenticatedWithAnExpiredToken(ctx context.Context) error {
	return authenticate(ctx, time.Now().Add(-time.Hour))
}

func authenticate(ctx context.Context, expiresAt time.Time) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        "user-1",
		"username":   "tester",
		"token_type": "access",
		"exp":        expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	tc.accessToken = signed
	return nil
}

func iSaveTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	tc.saved[name] = fmt.Sprintf("%v", value)
	return nil
}

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// expand replaces {{name}} with the value saved under name.
func (tc *TestContext) expand(s string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := tc.saved[name]; ok {
			return value
		}
		return match
	})
}

// Response steps

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), tc.expand(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if value == nil {
		actual = "null"
	}
	if expected = tc.expand(expected); actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.responseField(field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func theResponseHeaderShouldBe(ctx context.Context, header, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if actual := tc.response.Header.Get(header); actual != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if actual := tc.response.Header.Get(header); !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' does not contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func theResponseShouldMatchJSON(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var expected, actual any
	if err := json.Unmarshal([]byte(tc.expand(body.Content)), &expected); err != nil {
		return fmt.Errorf("failed to parse expected JSON: %w", err)
	}
	if err := json.Unmarshal(tc.responseBody, &actual); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	expectedJSON, _ := json.Marshal(expected)
	actualJSON, _ := json.Marshal(actual)
	if string(expectedJSON) != string(actualJSON) {
		return fmt.Errorf("expected JSON:\n%s\nactual JSON:\n%s", string(expectedJSON), string(actualJSON))
	}
	return nil
}

// responseField decodes the response body and resolves a dot path such as "expenses.0.name".
func (tc *TestContext) responseField(path string) (any, error) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}
	return getFieldValue(data, path)
}

func getFieldValue(data any, path string) (any, error) {
	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response", path)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}
	return current, nil
}

// Storage steps

func theStoredCollectionShouldContain(ctx context.Context, key string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.kv == nil {
		return fmt.Errorf("test server is not running")
	}

	data, found, err := tc.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return fmt.Errorf("collection %s not stored", key)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("collection %s is not an array: %w", key, err)
	}
	if len(records) != count {
		return fmt.Errorf("collection %s expected %d records, got %d", key, count, len(records))
	}
	return nil
}

func theStoredCollectionShouldNotExist(ctx context.Context, key string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.kv == nil {
		return fmt.Errorf("test server is not running")
	}

	_, found, err := tc.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if found {
		return fmt.Errorf("collection %s should not be stored", key)
	}
	return nil
}

func theDBShouldContainObjectsInTable(ctx context.Context, count int, table string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	tableModel, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("unknown table %s", table)
	}

	var actual int64
	if err := tc.db.DbConn.Model(tableModel).Count(&actual).Error; err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if actual != int64(count) {
		return fmt.Errorf("table %s expected %d rows, got %d", table, count, actual)
	}
	return nil
}

func theStorageIsWiped(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.db.ClearDB(); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	return mock.ClearRedis(tc.redis)
}
