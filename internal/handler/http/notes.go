package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aognev/go-notes-api/internal/app"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/internal/service"
	"github.com/aognev/go-notes-api/internal/utils"
	"github.com/aognev/go-notes-api/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteErrorJSON(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.NoteCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteErrorJSON(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.Create(ctx, owner, req)
	if err != nil {
		log.Err(err).Msg("note creation failed")
		// Every create failure, including insert and normalization errors,
		// is the caller's 400.
		utils.WriteErrorJSON(w, "Failed to create note: "+err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteErrorJSON(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.List(ctx, owner)
	if err != nil {
		log.Err(err).Msg("notes listing failed")
		utils.WriteErrorJSON(w, "Failed to fetch notes", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteErrorJSON(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDParam(r)
	if err != nil {
		utils.WriteErrorJSON(w, app.MsgNoteNotFound, http.StatusNotFound)
		return
	}

	note, err := h.services.NoteService.Get(ctx, owner, noteID)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			utils.WriteErrorJSON(w, app.MsgNoteNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("note_id", noteID).Msg("note fetch failed")
		utils.WriteErrorJSON(w, "Failed to fetch note", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteErrorJSON(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDParam(r)
	if err != nil {
		utils.WriteErrorJSON(w, app.MsgNoteNotFound, http.StatusNotFound)
		return
	}

	if err := h.services.NoteService.Delete(ctx, owner, noteID); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			utils.WriteErrorJSON(w, app.MsgNoteNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("note_id", noteID).Msg("note deletion failed")
		utils.WriteErrorJSON(w, "Failed to delete note", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) summarizeNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		utils.WriteErrorJSON(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDParam(r)
	if err != nil {
		utils.WriteErrorJSON(w, app.MsgNoteNotFound, http.StatusNotFound)
		return
	}

	note, err := h.services.NoteService.Summarize(ctx, owner, noteID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoteNotFound):
			utils.WriteErrorJSON(w, app.MsgNoteNotFound, http.StatusNotFound)
		case errors.Is(err, service.ErrSummarizerNotConfigured):
			utils.WriteErrorJSON(w, app.MsgSummaryNotConfigured, http.StatusInternalServerError)
		default:
			log.Err(err).Int64("note_id", noteID).Msg("note summarization failed")
			utils.WriteErrorJSON(w, "Failed to summarize note", statusFromError(err))
		}
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// noteIDParam parses the {noteID} path parameter. Identifiers are integers;
// anything else names a resource that cannot exist.
func noteIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "noteID"), 10, 64)
}
