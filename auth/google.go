package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jetech-hub/jetech-api/models"
	"gorm.io/gorm"
)

// ---------------------------------------------
// GOOGLE USER LOGIN
// ---------------------------------------------
func GoogleUserLoginHandler(w http.ResponseWriter, r *http.Request, db *gorm.DB) {
	var req struct {
		IDToken string `json:"idToken"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	// Verify Firebase token
	token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
	if err != nil {
		http.Error(w, "Invalid Firebase ID token", http.StatusUnauthorized)
		return
	}

	if token.Audience != projectID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	// Extract user info
	email := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	firebaseUserID := token.UID

	// Fetch or create user. A fresh user gets an empty cart row so the
	// cart endpoints never have to special-case first use.
	var user models.User
	err = db.Preload("Cart.Items").Where("id = ?", firebaseUserID).First(&user).Error

	if err == gorm.ErrRecordNotFound {
		user = models.User{
			ID:       firebaseUserID,
			Email:    email,
			FullName: name,
			Picture:  picture,
			Provider: "google",
			Cart:     models.Cart{UserID: firebaseUserID},
		}

		if err := db.Create(&user).Error; err != nil {
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

	} else if err == nil {
		// User already exists → Update profile
		db.Model(&user).Updates(models.User{
			FullName: name,
			Picture:  picture,
		})
	} else {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"message":     "Login successful",
		"user":        user,
		"firebase_id": firebaseUserID,
		"token":       issueJWT(email, "user", firebaseUserID, name, picture),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
