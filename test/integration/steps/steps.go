//go:build integration

package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/household-budget/backend/internal/integration/persistence/model"
)

// Member setup

func (t *testContext) theHouseholdMembersExist(first, second string) error {
	if err := t.createMember(first); err != nil {
		return err
	}
	return t.createMember(second)
}

func (t *testContext) createMember(name string) error {
	var existing model.UserModel
	if err := t.db.DbConn.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(testMemberPassword), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(user).Error
}

// iAmLoggedInAs logs in through the API so the scenario holds real tokens.
func (t *testContext) iAmLoggedInAs(name string) error {
	t.startServer()

	if err := t.createMember(name); err != nil {
		return err
	}

	payload := fmt.Sprintf(`{"name": %q, "password": %q}`, name, testMemberPassword)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(payload)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login as %s failed with status %d: %v", name, t.response.status, t.response.body)
	}
	if t.accessToken == "" {
		return errors.New("login response did not contain an access token")
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

// Data setup

func (t *testContext) aFixedExpenseExists(description, amount string, dueDay int, profile string, month, year int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	t.fixedExpenseID = uuid.New()
	now := time.Now().UTC()
	fixed := &model.FixedExpenseModel{
		ID:             t.fixedExpenseID,
		Description:    description,
		Amount:         value,
		Category:       "Moradia",
		DueDay:         dueDay,
		PaymentMethod:  "Pix",
		Profile:        profile,
		ReferenceMonth: month,
		ReferenceYear:  year,
		PaymentStatus:  "pendente",
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return t.db.DbConn.Create(fixed).Error
}

func (t *testContext) anIncomeExists(description, amount, profile string, month, year int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	t.incomeID = uuid.New()
	now := time.Now().UTC()
	income := &model.IncomeModel{
		ID:          t.incomeID,
		Description: description,
		Amount:      value,
		Category:    "Salário",
		Profile:     profile,
		Month:       month,
		Year:        year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(income).Error
}

func (t *testContext) aPurchaseRequestExists(requester, recipient, item, amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	t.requestID = uuid.New()
	now := time.Now().UTC()
	request := &model.PurchaseRequestModel{
		ID:        t.requestID,
		Requester: requester,
		Recipient: recipient,
		Item:      item,
		Amount:    value,
		Status:    "pendente",
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(request).Error
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{plan_id}}", t.planID)
	content = strings.ReplaceAll(content, "{{expense_id}}", t.expenseID.String())
	content = strings.ReplaceAll(content, "{{income_id}}", t.incomeID.String())
	content = strings.ReplaceAll(content, "{{fixed_expense_id}}", t.fixedExpenseID.String())
	content = strings.ReplaceAll(content, "{{request_id}}", t.requestID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIdentifiers(responseBody)
	return nil
}

// captureIdentifiers keeps tokens and record IDs from the last response so
// later steps can reference them through placeholders.
func (t *testContext) captureIdentifiers(body map[string]any) {
	if token, ok := body["access_token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := body["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}

	if planID, ok := body["plan_id"].(string); ok && planID != "" {
		t.planID = planID
	}
	if expenses, ok := body["expenses"].([]any); ok && len(expenses) > 0 {
		if first, ok := expenses[0].(map[string]any); ok {
			if id := parseID(first["id"]); id != uuid.Nil {
				t.expenseID = id
			}
		}
	}

	id := parseID(body["id"])
	if id == uuid.Nil {
		return
	}
	switch {
	case hasKey(body, "due_day"):
		t.fixedExpenseID = id
	case hasKey(body, "requester"):
		t.requestID = id
	case hasKey(body, "billing_month"):
		t.expenseID = id
	case hasKey(body, "month"):
		t.incomeID = id
	}
}

func parseID(value any) uuid.UUID {
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func hasKey(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

// Response assertions

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("field %q should not exist but is %v", field, value)
	}
	return nil
}

func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return getFieldValue(body, field), nil
}

// getFieldValue walks a dot-separated path through nested objects and arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object
	for _, current := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if index, err := strconv.Atoi(current); err == nil {
			arr, ok := field.([]any)
			if !ok || index >= len(arr) {
				return nil
			}
			field = arr[index]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[current]
	}
	return field
}

// Database assertions

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	if _, ok := t.db.GetModel(table); !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	query := t.db.DbConn.Table(table)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if int(count) != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
