package steps

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulso-finanzas/backend/internal/integration/persistence/model"
)

const seedDateLayout = "2006-01-02"

func (t *testContext) aWorkspaceExistsNamed(name string) error {
	workspaceID := uuid.New()
	t.workspaceID = workspaceID

	workspace := &model.WorkspaceModel{
		ID:         workspaceID,
		Name:       name,
		OwnerName:  "Dueno de Prueba",
		OwnerEmail: "dueno@example.com",
		CreatedAt:  time.Now().UTC(),
	}

	return t.db.Conn.Create(workspace).Error
}

func (t *testContext) iAmAuthenticatedAsTheWorkspaceOwner() error {
	if t.workspaceID == uuid.Nil {
		return fmt.Errorf("no workspace seeded, add a workspace step first")
	}
	return t.signToken(t.workspaceID)
}

func (t *testContext) iAmAuthenticatedForAnUnknownWorkspace() error {
	return t.signToken(uuid.New())
}

func (t *testContext) signToken(workspaceID uuid.UUID) error {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"workspace_id": workspaceID.String(),
		"email":        "dueno@example.com",
		"token_type":   "access",
		"exp":          jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":          jwt.NewNumericDate(now),
		"nbf":          jwt.NewNumericDate(now),
		"sub":          workspaceID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign access token: %w", err)
	}

	t.accessToken = signed
	return nil
}

func (t *testContext) aCollectionExistsOn(amount, date string) error {
	value, day, err := parseAmountAndDate(amount, t.replacePlaceholders(date))
	if err != nil {
		return err
	}

	collection := &model.CollectionModel{
		ID:          uuid.New(),
		WorkspaceID: t.workspaceID,
		Amount:      value,
		Date:        day,
		CreatedAt:   time.Now().UTC(),
	}

	return t.db.Conn.Create(collection).Error
}

func (t *testContext) anExpenseExistsOn(amount, date string) error {
	value, day, err := parseAmountAndDate(amount, t.replacePlaceholders(date))
	if err != nil {
		return err
	}

	expense := &model.ExpenseModel{
		ID:          uuid.New(),
		WorkspaceID: t.workspaceID,
		Description: "Gasto de prueba",
		Amount:      value,
		Date:        day,
		CreatedAt:   time.Now().UTC(),
	}

	return t.db.Conn.Create(expense).Error
}

func (t *testContext) anInvoiceWasIssuedDaysAgo(amount string, daysAgo int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	invoice := &model.InvoiceModel{
		ID:          uuid.New(),
		WorkspaceID: t.workspaceID,
		Amount:      value,
		IssuedAt:    time.Now().UTC().AddDate(0, 0, -daysAgo),
		CreatedAt:   time.Now().UTC(),
	}

	return t.db.Conn.Create(invoice).Error
}

func (t *testContext) aConfirmedFixedExpenseExists(name, amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	now := time.Now().UTC()
	fixedExpense := &model.FixedExpenseModel{
		ID:            uuid.New(),
		WorkspaceID:   t.workspaceID,
		Name:          name,
		MonthlyAmount: value,
		Status:        model.FixedExpenseStatusConfirmed,
		ConfirmedAt:   &now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.Conn.Create(fixedExpense).Error
}

func (t *testContext) aMonthlyTargetExists(period, sales, collection string) error {
	period = t.replacePlaceholders(period)
	parsed, err := time.Parse("2006-01", period)
	if err != nil {
		return fmt.Errorf("invalid period %q: %w", period, err)
	}

	salesTarget, err := decimal.NewFromString(sales)
	if err != nil {
		return fmt.Errorf("invalid sales target %q: %w", sales, err)
	}
	collectionTarget, err := decimal.NewFromString(collection)
	if err != nil {
		return fmt.Errorf("invalid collection target %q: %w", collection, err)
	}

	now := time.Now().UTC()
	target := &model.MonthlyTargetModel{
		ID:               uuid.New(),
		WorkspaceID:      t.workspaceID,
		Year:             parsed.Year(),
		Month:            int(parsed.Month()),
		SalesTarget:      salesTarget,
		CollectionTarget: collectionTarget,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return t.db.Conn.Create(target).Error
}

func (t *testContext) aLegacyGoalExists(sales, collection string) error {
	salesGoal, err := decimal.NewFromString(sales)
	if err != nil {
		return fmt.Errorf("invalid sales goal %q: %w", sales, err)
	}
	collectionGoal, err := decimal.NewFromString(collection)
	if err != nil {
		return fmt.Errorf("invalid collection goal %q: %w", collection, err)
	}

	now := time.Now().UTC()
	goal := &model.LegacyGoalModel{
		ID:             uuid.New(),
		WorkspaceID:    t.workspaceID,
		SalesGoal:      salesGoal,
		CollectionGoal: collectionGoal,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return t.db.Conn.Create(goal).Error
}

func (t *testContext) aBalanceSnapshotWasReportedDaysAgo(amount string, daysAgo int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	reportedAt := time.Now().UTC().AddDate(0, 0, -daysAgo)
	snapshot := &model.BalanceSnapshotModel{
		ID:          uuid.New(),
		WorkspaceID: t.workspaceID,
		Amount:      value,
		Theoretical: value,
		Difference:  decimal.Zero,
		Note:        "Corte sembrado",
		ReportedAt:  reportedAt,
		CreatedAt:   reportedAt,
	}

	return t.db.Conn.Create(snapshot).Error
}

func parseAmountAndDate(amount, date string) (decimal.Decimal, time.Time, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	day, err := time.Parse(seedDateLayout, date)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return value, day, nil
}
