package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/business-start/api/internal/domain"
	"github.com/business-start/api/internal/platform/auth"
	"github.com/business-start/api/internal/platform/blob"
	"github.com/business-start/api/internal/platform/httpx"
	"github.com/business-start/api/internal/platform/requestctx"
	"github.com/business-start/api/internal/services"
	"github.com/business-start/api/internal/studio"
)

const (
	maxUploadMemory   = 32 << 20
	mediaCacheControl = "public, max-age=604800, s-maxage=604800"
)

// StudioHandlers serves the admin studio endpoints and the public media proxy.
type StudioHandlers struct {
	store   *studio.Store
	content *services.ContentService
	media   blob.Store
	guard   *auth.AdminKeyGuard
}

// StudioHandlersDeps groups constructor parameters for the studio endpoints.
type StudioHandlersDeps struct {
	Store   *studio.Store
	Content *services.ContentService
	Media   blob.Store
	Guard   *auth.AdminKeyGuard
}

// NewStudioHandlers builds the studio endpoints.
func NewStudioHandlers(deps StudioHandlersDeps) *StudioHandlers {
	guard := deps.Guard
	if guard == nil {
		guard = auth.NewAdminKeyGuard("")
	}
	return &StudioHandlers{
		store:   deps.Store,
		content: deps.Content,
		media:   deps.Media,
		guard:   guard,
	}
}

// Routes registers the studio endpoints on the router group. The media proxy
// is public; everything else sits behind the admin key.
func (h *StudioHandlers) Routes(r chi.Router) {
	r.Get("/media", h.Media)
	r.Group(func(admin chi.Router) {
		admin.Use(h.guard.Middleware)
		admin.Put("/content", h.SaveContent)
		admin.Get("/state", h.State)
		admin.Post("/upload", h.Upload)
	})
}

type saveContentBody struct {
	Locale         string          `json:"locale"`
	Messages       domain.Messages `json:"messages"`
	WhatsappNumber *string         `json:"whatsappNumber"`
}

// SaveContent replaces one locale's message patch and, optionally, the site
// WhatsApp override.
func (h *StudioHandlers) SaveContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body saveContentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(ctx, w, httpx.BadRequest("invalid JSON body"))
		return
	}

	localeParam := body.Locale
	if localeParam == "" {
		localeParam = string(domain.DefaultLocale)
	}
	if !domain.IsLocale(localeParam) {
		httpx.WriteError(ctx, w, httpx.BadRequest("invalid locale"))
		return
	}
	locale := domain.Locale(localeParam)
	requestctx.SetLocale(ctx, locale)

	content, err := h.store.Ensure(ctx)
	if err != nil {
		requestctx.Logger(ctx).Error("studio content load failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal(fmt.Sprintf("could not load content document: %v", err)))
		return
	}

	patch := body.Messages
	if patch == nil {
		patch = domain.Messages{}
	}
	content.Locales[locale] = domain.StudioLocale{Messages: patch}

	if body.WhatsappNumber != nil {
		if content.Global == nil {
			content.Global = &domain.StudioGlobal{}
		}
		content.Global.WhatsappNumber = strings.TrimSpace(*body.WhatsappNumber)
	}

	if err := h.store.Save(ctx, content); err != nil {
		requestctx.Logger(ctx).Error("studio content save failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal(fmt.Sprintf("could not save content document: %v", err)))
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, map[string]any{
		"ok":        true,
		"url":       h.store.DocumentURL(),
		"updatedAt": content.UpdatedAt,
	})
}

// State returns the resolved messages, the stored patch, and the locale's
// media library for the admin editor.
func (h *StudioHandlers) State(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locale := domain.LocaleOrDefault(r.URL.Query().Get("locale"))
	requestctx.SetLocale(ctx, locale)

	content, err := h.store.Ensure(ctx)
	if err != nil {
		requestctx.Logger(ctx).Error("studio content load failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal("could not load content document"))
		return
	}

	patch := content.PatchFor(locale)
	if patch == nil {
		patch = domain.Messages{}
	}

	library := make([]domain.MediaItem, 0, len(content.MediaLibrary))
	for _, item := range content.MediaLibrary {
		if item.Locale == locale {
			library = append(library, item)
		}
	}
	sort.SliceStable(library, func(i, j int) bool {
		return library[i].CreatedAt > library[j].CreatedAt
	})

	httpx.WriteJSON(ctx, w, http.StatusOK, map[string]any{
		"locale":       locale,
		"messages":     h.content.Resolve(ctx, locale),
		"patch":        patch,
		"mediaLibrary": library,
		"updatedAt":    content.UpdatedAt,
	})
}

// Upload stores one media file and prepends it to the media library.
func (h *StudioHandlers) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		httpx.WriteError(ctx, w, httpx.BadRequest("invalid multipart form"))
		return
	}

	localeParam := r.FormValue("locale")
	if localeParam == "" {
		localeParam = string(domain.DefaultLocale)
	}
	if !domain.IsLocale(localeParam) {
		httpx.WriteError(ctx, w, httpx.BadRequest("invalid locale"))
		return
	}
	locale := domain.Locale(localeParam)
	requestctx.SetLocale(ctx, locale)

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(ctx, w, httpx.BadRequest("missing file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		requestctx.Logger(ctx).Error("upload read failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal(fmt.Sprintf("could not read upload: %v", err)))
		return
	}

	item, err := h.store.UploadMedia(ctx, studio.UploadInput{
		Locale:      locale,
		Title:       strings.TrimSpace(r.FormValue("title")),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, studio.ErrMissingFile) {
			httpx.WriteError(ctx, w, httpx.BadRequest("missing file"))
			return
		}
		requestctx.Logger(ctx).Error("media upload failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal(fmt.Sprintf("could not upload media: %v", err)))
		return
	}

	content, err := h.store.Ensure(ctx)
	if err != nil {
		requestctx.Logger(ctx).Error("studio content load failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal(fmt.Sprintf("could not load content document: %v", err)))
		return
	}
	content.MediaLibrary = append([]domain.MediaItem{item}, content.MediaLibrary...)
	if err := h.store.Save(ctx, content); err != nil {
		requestctx.Logger(ctx).Error("studio content save failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal(fmt.Sprintf("could not save content document: %v", err)))
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, map[string]any{
		"ok":        true,
		"mediaItem": item,
	})
}

// Media streams a stored media object through the API, re-authenticating
// access to the private bucket.
func (h *StudioHandlers) Media(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pathname := strings.TrimSpace(r.URL.Query().Get("pathname"))
	if pathname == "" || !strings.HasPrefix(pathname, studio.MediaPrefix+"/") {
		httpx.WriteError(ctx, w, httpx.BadRequest("invalid pathname"))
		return
	}

	if h.media == nil {
		httpx.WriteError(ctx, w, httpx.NotFound("media not found"))
		return
	}

	reader, info, err := h.media.Open(ctx, pathname)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			httpx.WriteError(ctx, w, httpx.NotFound("media not found"))
			return
		}
		requestctx.Logger(ctx).Error("media fetch failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.Internal("media fetch failed"))
		return
	}
	defer reader.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", mediaCacheControl)
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, reader); err != nil {
		requestctx.Logger(ctx).Warn("media stream interrupted", zap.Error(err))
	}
}
