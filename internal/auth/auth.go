package auth

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"dengue-tracker-go/pkg/model"
)

// AuthService handles operator authentication
type AuthService struct {
	db            *sqlx.DB
	jwtSecret     []byte
	encryptionKey string
}

// NewAuthService creates a new authentication service
func NewAuthService(db *sqlx.DB, jwtSecret, encryptionKey string) *AuthService {
	return &AuthService{
		db:            db,
		jwtSecret:     []byte(jwtSecret),
		encryptionKey: encryptionKey,
	}
}

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// CheckPassword compares password with hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateJWT creates a new JWT token for an authenticated operator
func (s *AuthService) GenerateJWT(userID int, username string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userID
	claims["username"] = username
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	return token.SignedString(s.jwtSecret)
}

// Login authenticates an operator and handles 2FA if enabled
func (s *AuthService) Login(creds model.UserCredentials) (*model.User, string, error) {
	var user model.User

	err := s.db.Get(&user, "SELECT * FROM users WHERE username = $1", creds.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", errors.New("invalid username or password")
		}
		return nil, "", err
	}

	if !CheckPassword(creds.Password, user.PasswordHash) {
		return nil, "", errors.New("invalid username or password")
	}

	if user.TwoFactorEnabled {
		if creds.TOTPCode == "" {
			return &user, "", errors.New("2fa_required")
		}

		secret, err := DecryptTOTPSecret(user.TwoFactorSecret, s.encryptionKey)
		if err != nil {
			return nil, "", errors.New("error processing 2FA")
		}

		if !ValidateTOTP(secret, creds.TOTPCode) {
			return nil, "", errors.New("invalid 2FA code")
		}
	}

	token, err := s.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// SetupTwoFactor generates and stores a fresh TOTP secret for an operator.
// 2FA stays disabled until the first code is verified.
func (s *AuthService) SetupTwoFactor(userID int) (*model.TwoFactorSetupResponse, error) {
	var user model.User
	err := s.db.Get(&user, "SELECT * FROM users WHERE id = $1", userID)
	if err != nil {
		log.Printf("Error fetching user %d: %v", userID, err)
		return nil, err
	}

	secret, err := GenerateTOTPSecret()
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec("UPDATE users SET two_factor_enabled = false WHERE id = $1", userID)
	if err != nil {
		log.Printf("Error resetting 2FA flag: %v", err)
		// Not critical, the verify step sets it anyway
	}

	encryptedSecret, err := EncryptTOTPSecret(secret, s.encryptionKey)
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec("UPDATE users SET two_factor_secret = $1 WHERE id = $2",
		sql.NullString{String: encryptedSecret, Valid: true}, userID)
	if err != nil {
		return nil, err
	}

	return &model.TwoFactorSetupResponse{
		Secret:    secret,
		QRCodeURL: GenerateTOTPQRCodeURL(secret, user.Email, "DengueTracker"),
	}, nil
}

// VerifyAndEnableTwoFactor verifies the 2FA code and enables 2FA if valid
func (s *AuthService) VerifyAndEnableTwoFactor(userID int, code string) error {
	var user model.User

	err := s.db.Get(&user, "SELECT * FROM users WHERE id = $1", userID)
	if err != nil {
		return err
	}

	if !user.TwoFactorSecret.Valid {
		return errors.New("two-factor authentication is not set up")
	}

	secret, err := DecryptTOTPSecret(user.TwoFactorSecret, s.encryptionKey)
	if err != nil {
		return err
	}

	if !ValidateTOTP(secret, code) {
		return errors.New("invalid 2FA code")
	}

	_, err = s.db.Exec("UPDATE users SET two_factor_enabled = true WHERE id = $1", userID)
	return err
}

// DisableTwoFactor disables 2FA for an operator
func (s *AuthService) DisableTwoFactor(userID int) error {
	_, err := s.db.Exec("UPDATE users SET two_factor_enabled = false, two_factor_secret = NULL WHERE id = $1", userID)
	return err
}

// GetUserByID fetches an operator by ID
func (s *AuthService) GetUserByID(userID int) (*model.User, error) {
	var user model.User
	err := s.db.Get(&user, "SELECT * FROM users WHERE id = $1", userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterUser creates a new operator account
func (s *AuthService) RegisterUser(req model.RegistrationRequest) (int64, error) {
	var count int
	err := s.db.Get(&count, "SELECT COUNT(*) FROM users WHERE username = $1", req.Username)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, errors.New("username already exists")
	}

	err = s.db.Get(&count, "SELECT COUNT(*) FROM users WHERE email = $1", req.Email)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, errors.New("email already exists")
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	var userID int64
	err = s.db.QueryRow(
		`INSERT INTO users (username, password_hash, email, two_factor_enabled, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $5)
         RETURNING id`,
		req.Username, hashedPassword, req.Email, false, time.Now()).Scan(&userID)
	if err != nil {
		return 0, err
	}

	return userID, nil
}
