package stubserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vats147/Inventory-mobile-app/internal/apperr"
	"github.com/vats147/Inventory-mobile-app/internal/backend"
	"github.com/vats147/Inventory-mobile-app/internal/model"
)

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		s.writeError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}
	if err := s.validate.Validate(creds); err != nil {
		s.writeError(w, r, err)
		return
	}

	sess, err := s.backend.Auth.Login(r.Context(), creds)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, sess)
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Auth.Logout(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.backend.Auth.Profile(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, user)
}

func (s *Service) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.backend.Users.ListUsers(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, users)
}

func (s *Service) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var params backend.CreateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}
	if err := s.validate.Validate(params); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.backend.Users.CreateUser(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, user)
}

func (s *Service) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var params backend.UpdateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}
	if err := s.validate.Validate(params); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.backend.Users.UpdateUser(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, user)
}

func (s *Service) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Users.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
