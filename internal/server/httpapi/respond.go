package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

type entryResponse struct {
	ID                int64  `json:"id"`
	Website           string `json:"website"`
	Username          string `json:"username"`
	EncryptedPassword string `json:"encrypted_password"`
	Salt              string `json:"salt"`
	IV                string `json:"iv"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

func toEntryResponse(e *models.Entry) entryResponse {
	return entryResponse{
		ID:                e.ID,
		Website:           e.Website,
		Username:          e.Username,
		EncryptedPassword: e.EncryptedPassword,
		Salt:              e.Salt,
		IV:                e.IV,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         e.UpdatedAt.Format(time.RFC3339),
	}
}

func errorResponse(msg string) map[string]any {
	return map[string]any{"success": false, "error": msg}
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
