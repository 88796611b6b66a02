package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/passvault/internal/common"
)

type savePasswordRequest struct {
	Website           string `json:"website"`
	Username          string `json:"username"`
	EncryptedPassword string `json:"encrypted_password"`
	Salt              string `json:"salt"`
	IV                string `json:"iv"`
}

func (s *Server) handleSavePassword(w http.ResponseWriter, r *http.Request, userID string) {

	var req savePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, errorResponse("Invalid JSON data"))
		return
	}

	entry, err := s.entries.Upsert(r.Context(), userID,
		req.Website, req.Username, req.EncryptedPassword, req.Salt, req.IV)
	if err != nil {
		if errors.Is(err, common.ErrorMissingField) {
			writeJSON(w, errorResponse("Missing required fields"))
			return
		}
		s.logger.Error(r.Context(), "save password failed", "user_id", userID, "error", err.Error())
		writeJSON(w, errorResponse("could not save password"))
		return
	}

	writeJSON(w, map[string]any{
		"success":  true,
		"message":  "Password saved successfully",
		"entry_id": entry.ID,
	})
}

func (s *Server) handleGetPasswords(w http.ResponseWriter, r *http.Request, userID string) {

	entries, err := s.entries.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "list passwords failed", "user_id", userID, "error", err.Error())
		writeJSON(w, errorResponse("could not load passwords"))
		return
	}

	passwords := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		passwords = append(passwords, toEntryResponse(e))
	}

	writeJSON(w, map[string]any{"success": true, "passwords": passwords})
}

func (s *Server) handleDeletePassword(w http.ResponseWriter, r *http.Request, userID string) {

	// an unparsable id gets the same answer as a missing entry: the caller
	// learns nothing about what exists
	entryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, errorResponse("not found"))
		return
	}

	if err := s.entries.Delete(r.Context(), userID, entryID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, errorResponse("not found"))
			return
		}
		s.logger.Error(r.Context(), "delete password failed", "user_id", userID, "error", err.Error())
		writeJSON(w, errorResponse("could not delete password"))
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Password deleted successfully"})
}

func (s *Server) handleCheckSession(w http.ResponseWriter, r *http.Request, userID string) {
	writeJSON(w, map[string]any{"success": true, "authenticated": true})
}
