package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/edenpods/edenpods/internal/db"
	"github.com/edenpods/edenpods/internal/security"
)

const minPasswordLength = 8

// RunResetPasswordCommand resets an account password from the server
// console. With prompt set the operator types the new password; otherwise
// a temporary one is generated and printed.
func RunResetPasswordCommand(dbPath string, email string, prompt bool) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	users := db.NewUserRepository(database)

	user, err := users.FindByEmail(normalizedEmail)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s not found", normalizedEmail)
	}

	newPassword := ""
	if prompt {
		newPassword, err = promptNewPassword()
		if err != nil {
			return err
		}
	} else {
		newPassword, err = generateTemporaryPassword(12)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := users.UpdatePasswordHash(user.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	if !prompt {
		fmt.Printf("Temporary password: %s\n", newPassword)
	}
	return nil
}

func promptNewPassword() (string, error) {
	fmt.Print("New password: ")
	line, err := readHiddenLine(os.Stdin)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := string(line)
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return password, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < minPasswordLength {
		length = minPasswordLength
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
