//go:build integration

// Package steps provides step definitions for the BDD integration tests. The
// API boots once per suite on a free port, wired against the shared in-memory
// database and embedded redis; every scenario starts from wiped tables.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/household-budget/backend/config"
	"github.com/household-budget/backend/internal/infra/dependency"
	"github.com/household-budget/backend/internal/integration/persistence/model"
	"github.com/household-budget/backend/test/integration/mock"
)

const (
	testJWTSecret      = "test-jwt-secret-key-for-testing-purposes"
	testMemberPassword = "senha-teste-123"
)

type testContext struct {
	uri     string
	client  *http.Client
	headers map[string]string

	db    *mock.Db
	redis *redis.Client

	response *response

	accessToken  string
	refreshToken string

	planID         string
	expenseID      uuid.UUID
	incomeID       uuid.UUID
	fixedExpenseID uuid.UUID
	requestID      uuid.UUID
}

type response struct {
	status int
	body   any
}

var (
	envInit        sync.Once
	serverInit     sync.Once
	testDB         *mock.Db
	testRedis      *redis.Client
	testServerPort int
)

func initializeEnv() {
	envInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("EMAIL_WORKER_ENABLED", "false")
	})
}

// InitializeTestSuite sets up suite-wide resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		initializeEnv()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializeEnv()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":             &model.UserModel{},
			"expenses":          &model.ExpenseModel{},
			"incomes":           &model.IncomeModel{},
			"fixed_expenses":    &model.FixedExpenseModel{},
			"purchase_requests": &model.PurchaseRequestModel{},
			"email_queue":       &model.EmailQueueModel{},
		}),
		redis: mock.NewRedis(),
	}

	testDB = test.db
	testRedis = test.redis

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^the household members "([^"]*)" and "([^"]*)" exist$`, test.theHouseholdMembersExist)
	ctx.Step(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)

	// Data setup steps
	ctx.Step(`^a fixed expense "([^"]*)" of "([^"]*)" due on day (\d+) exists for "([^"]*)" in (\d+)/(\d+)$`, test.aFixedExpenseExists)
	ctx.Step(`^an income "([^"]*)" of "([^"]*)" exists for "([^"]*)" in (\d+)/(\d+)$`, test.anIncomeExists)
	ctx.Step(`^a purchase request from "([^"]*)" to "([^"]*)" for "([^"]*)" of "([^"]*)" exists$`, test.aPurchaseRequestExists)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.planID = ""
	t.expenseID = uuid.Nil
	t.incomeID = uuid.Nil
	t.fixedExpenseID = uuid.Nil
	t.requestID = uuid.Nil

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(t.redis)
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			cfg := config.Load()

			injector, err := dependency.NewInjector(cfg, testDB.DbConn, testRedis)
			if err != nil {
				panic("failed to wire test server: " + err.Error())
			}

			engine := injector.Router.Setup("test")
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
