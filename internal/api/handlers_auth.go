package api

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/edenpods/edenpods/internal/chain"
	"github.com/edenpods/edenpods/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 8

type credentialsInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	input.Email = strings.TrimSpace(input.Email)
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	return input, nil
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !emailPattern.MatchString(input.Email) {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	if len(input.Password) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password too short")
	}

	exists, err := handler.repos.Users.ExistsByEmail(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		DisplayName:  input.DisplayName,
		CreatedAt:    handler.clock(),
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(userResponse(&user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.repos.Users.FindByEmail(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(userResponse(user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(userResponse(currentUser(c)))
}

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":             user.ID,
		"email":          user.Email,
		"display_name":   user.DisplayName,
		"wallet_address": user.WalletAddress,
		"wallet_short":   chain.ShortenAddress(user.WalletAddress, 4),
	}
}
