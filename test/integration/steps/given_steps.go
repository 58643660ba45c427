package steps

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetbook/backend/internal/integration/persistence/model"
)

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test Dealer")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test Dealer")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		Role:         "seller",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

// iAmLoggedInAs switches the current user, creating them if needed.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "DefaultPass123!", "Test Dealer "+email); err != nil {
			return err
		}
	} else {
		t.currentUserID = userModel.ID
	}

	return t.issueTokensFor(t.currentUserID, email)
}

// issueTokensFor mints a signed token pair and stores the refresh token
// the same way the token service does, so refresh and logout flows see it.
func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessToken, err := signTestToken(userID, email, "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessToken

	refreshToken, err := signTestToken(userID, email, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func signTestToken(userID uuid.UUID, email, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "fleetbook",
		"sub":        userID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aVehicleExistsWithMakeAndModel(vehicleMake, vehicleModel string) error {
	return t.createVehicle(vehicleMake, vehicleModel, "in_stock", 500000, nil, time.Now().UTC())
}

func (t *testContext) aVehicleExistsWithMakeAndStatus(vehicleMake, status string) error {
	return t.createVehicle(vehicleMake, "Test", status, 500000, nil, time.Now().UTC())
}

// aVehicleSoldInExists seeds a sold vehicle whose sale lands in the given
// "YYYY-MM" month, for dashboard history scenarios.
func (t *testContext) aVehicleSoldInExists(month string, purchasePrice, salePrice int) error {
	soldMonth, err := time.Parse("2006-01", month)
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", month, err)
	}
	soldAt := soldMonth.AddDate(0, 0, 14)

	sale := int64(salePrice)
	return t.createVehicle("Peugeot", "208", "sold", int64(purchasePrice), &sale, soldAt)
}

func (t *testContext) createVehicle(vehicleMake, vehicleModel, status string, purchasePrice int64, salePrice *int64, updatedAt time.Time) error {
	if t.currentUserID == uuid.Nil {
		return fmt.Errorf("no current user; create a user before seeding vehicles")
	}

	vehicleID := uuid.New()
	t.currentVehicleID = vehicleID

	vehicle := &model.VehicleModel{
		ID:            vehicleID,
		OwnerID:       t.currentUserID,
		Make:          vehicleMake,
		Model:         vehicleModel,
		Year:          2018,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		Mileage:       85000,
		Status:        status,
		CreatedAt:     updatedAt.Add(-24 * time.Hour),
		UpdatedAt:     updatedAt,
	}

	return t.db.DbConn.Create(vehicle).Error
}

func (t *testContext) aCostExistsForTheVehicle(amount int, label string) error {
	if t.currentVehicleID == uuid.Nil {
		return fmt.Errorf("no current vehicle; seed a vehicle before costs")
	}

	costID := uuid.New()
	t.currentCostID = costID

	now := time.Now().UTC()
	costEntry := &model.CostModel{
		ID:         costID,
		VehicleID:  t.currentVehicleID,
		Label:      label,
		Amount:     int64(amount),
		Category:   "repair",
		IncurredAt: now,
		CreatedAt:  now,
	}

	return t.db.DbConn.Create(costEntry).Error
}

func (t *testContext) aPhotoExistsForTheVehicle() error {
	if t.currentVehicleID == uuid.Nil {
		return fmt.Errorf("no current vehicle; seed a vehicle before photos")
	}

	photoID := uuid.New()
	t.currentPhotoID = photoID

	photoRow := &model.PhotoModel{
		ID:        photoID,
		VehicleID: t.currentVehicleID,
		URL:       "https://cdn.example.com/photos/" + photoID.String() + ".jpg",
		Position:  0,
		CreatedAt: time.Now().UTC(),
	}

	return t.db.DbConn.Create(photoRow).Error
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.clock.Set(now)
	return nil
}
