package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/presenter"
	"github.com/MKhiriev/ranking-mk2/internal/store"
	"github.com/MKhiriev/ranking-mk2/internal/utils"
	"github.com/MKhiriev/ranking-mk2/internal/validators"
	"github.com/MKhiriev/ranking-mk2/models"
	"github.com/go-chi/chi/v5"
)

// rankingEntry pairs a record with its global rank, the 1-based position in
// the full filtered order. The rank does not restart on page boundaries.
type rankingEntry struct {
	Rank    int
	Ranking models.Ranking
}

// publicPageData feeds the public ranking template.
type publicPageData struct {
	Query      string
	Page       int
	TotalPages int
	Total      int
	Entries    []rankingEntry
}

// adminListPageData feeds the admin console list template.
type adminListPageData struct {
	Session  models.Session
	Rankings []models.Ranking
}

// rankingFormPageData feeds the create/edit form template.
type rankingFormPageData struct {
	Session models.Session

	// IsEdit selects between the create and edit variants of the form.
	IsEdit bool
	ID     int64

	Draft  models.RankingDraft
	Errors validators.FieldErrors

	// NotFound marks the dedicated edit-flow state for a record that no
	// longer exists.
	NotFound bool
}

// ── public view ──────────────────────────────────────────────────────────────

func (h *Handler) publicRankingPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	filtered := presenter.Filter(h.cache.Snapshot(), query)
	totalPages := presenter.TotalPages(len(filtered), presenter.DefaultPageSize)
	page = presenter.ClampPage(page, len(filtered), presenter.DefaultPageSize)
	entries := presenter.Paginate(filtered, page, presenter.DefaultPageSize)

	data := publicPageData{
		Query:      query,
		Page:       page,
		TotalPages: totalPages,
		Total:      len(filtered),
		Entries:    make([]rankingEntry, 0, len(entries)),
	}
	for i, ranking := range entries {
		data.Entries = append(data.Entries, rankingEntry{
			Rank:    (page-1)*presenter.DefaultPageSize + i + 1,
			Ranking: ranking,
		})
	}

	h.renderPage(w, r, "public_list.gohtml", http.StatusOK, data)
}

func (h *Handler) exportRankingCSV(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	filtered := presenter.Filter(h.cache.Snapshot(), query)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", presenter.CSVFileName))
	w.Write([]byte(presenter.WriteCSV(filtered)))
}

// ── admin console ────────────────────────────────────────────────────────────

func (h *Handler) adminRankingPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session, _ := utils.GetSessionFromContext(ctx)

	// the console reads the store directly, not the public cache, so an
	// admin always sees their own mutation immediately
	rankings, err := h.services.RankingService.GetAllRankings(ctx)
	if err != nil {
		log.Err(err).Msg("loading ranking list for admin console failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "admin_list.gohtml", http.StatusOK, adminListPageData{
		Session:  session,
		Rankings: rankings,
	})
}

func (h *Handler) adminRankingCreatePage(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())

	h.renderPage(w, r, "ranking_form.gohtml", http.StatusOK, rankingFormPageData{Session: session})
}

func (h *Handler) adminRankingCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session, _ := utils.GetSessionFromContext(ctx)

	draft, err := draftFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid ranking form submission")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	createdRanking, err := h.services.RankingService.CreateRanking(ctx, draft)
	if err != nil {
		var fieldErrors validators.FieldErrors
		if errors.As(err, &fieldErrors) {
			h.renderPage(w, r, "ranking_form.gohtml", http.StatusBadRequest, rankingFormPageData{
				Session: session,
				Draft:   draft,
				Errors:  fieldErrors,
			})
			return
		}

		log.Err(err).Msg("unexpected error occurred during ranking creation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", createdRanking.ID).Str("accountName", createdRanking.AccountName).Msg("ranking created")

	h.refreshPublicList(r)
	http.Redirect(w, r, adminRankingPath, http.StatusSeeOther)
}

func (h *Handler) adminRankingEditPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session, _ := utils.GetSessionFromContext(ctx)

	id, err := rankingIDFromRequest(r)
	if err != nil {
		h.renderPage(w, r, "ranking_form.gohtml", http.StatusNotFound, rankingFormPageData{
			Session:  session,
			IsEdit:   true,
			NotFound: true,
		})
		return
	}

	ranking, err := h.services.RankingService.GetRankingByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRankingNotFound) {
			h.renderPage(w, r, "ranking_form.gohtml", http.StatusNotFound, rankingFormPageData{
				Session:  session,
				IsEdit:   true,
				ID:       id,
				NotFound: true,
			})
			return
		}

		log.Err(err).Int64("id", id).Msg("loading ranking for edit failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "ranking_form.gohtml", http.StatusOK, rankingFormPageData{
		Session: session,
		IsEdit:  true,
		ID:      ranking.ID,
		Draft: models.RankingDraft{
			AccountName: ranking.AccountName,
			ProfileURL:  ranking.ProfileURL,
			Followers:   ranking.Followers,
			ImageURL:    ranking.ImageURL,
			Area:        ranking.Area,
			StoreName:   ranking.StoreName,
		},
	})
}

func (h *Handler) adminRankingUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session, _ := utils.GetSessionFromContext(ctx)

	id, err := rankingIDFromRequest(r)
	if err != nil {
		h.renderPage(w, r, "ranking_form.gohtml", http.StatusNotFound, rankingFormPageData{
			Session:  session,
			IsEdit:   true,
			NotFound: true,
		})
		return
	}

	draft, err := draftFromForm(r)
	if err != nil {
		log.Err(err).Msg("invalid ranking form submission")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	updatedRanking, err := h.services.RankingService.UpdateRanking(ctx, id, draft)
	if err != nil {
		var fieldErrors validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrors):
			h.renderPage(w, r, "ranking_form.gohtml", http.StatusBadRequest, rankingFormPageData{
				Session: session,
				IsEdit:  true,
				ID:      id,
				Draft:   draft,
				Errors:  fieldErrors,
			})
			return
		case errors.Is(err, store.ErrRankingNotFound):
			h.renderPage(w, r, "ranking_form.gohtml", http.StatusNotFound, rankingFormPageData{
				Session:  session,
				IsEdit:   true,
				ID:       id,
				NotFound: true,
			})
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during ranking update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", updatedRanking.ID).Msg("ranking updated")

	h.refreshPublicList(r)
	http.Redirect(w, r, adminRankingPath, http.StatusSeeOther)
}

func (h *Handler) adminRankingDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := rankingIDFromRequest(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if err := h.services.RankingService.DeleteRanking(ctx, id); err != nil {
		// a record deleted twice is already gone, treat it as done
		if !errors.Is(err, store.ErrRankingNotFound) {
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during ranking deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", id).Msg("ranking deleted")

	h.refreshPublicList(r)
	http.Redirect(w, r, adminRankingPath, http.StatusSeeOther)
}

// refreshPublicList updates the public list cache after an admin mutation.
// Failures are logged and swallowed: the mutation itself already succeeded
// and the periodic refresh job will catch the cache up.
func (h *Handler) refreshPublicList(r *http.Request) {
	if err := h.cache.Refresh(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("public list refresh after mutation failed")
	}
}

// rankingIDFromRequest parses the {id} route parameter.
func rankingIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// draftFromForm coerces the submitted form values into a typed draft.
// A non-numeric followers value coerces to zero and is rejected by the
// validator rather than here.
func draftFromForm(r *http.Request) (models.RankingDraft, error) {
	if err := r.ParseForm(); err != nil {
		return models.RankingDraft{}, fmt.Errorf("error parsing ranking form: %w", err)
	}

	followers, _ := strconv.ParseInt(r.PostFormValue("followers"), 10, 64)

	return models.RankingDraft{
		AccountName: r.PostFormValue("accountName"),
		ProfileURL:  r.PostFormValue("profileUrl"),
		Followers:   followers,
		ImageURL:    r.PostFormValue("imageUrl"),
		Area:        r.PostFormValue("area"),
		StoreName:   r.PostFormValue("storeName"),
	}, nil
}
