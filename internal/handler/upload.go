package handler

import (
	"log/slog"
	"net/http"

	"github.com/Mehedihasan1234567/SocioSphere/internal/upload"
)

// UploadHandler serves GET /api/upload-auth: signed parameters an
// authenticated client needs to upload an image directly to the CDN.
type UploadHandler struct {
	signer *upload.Signer
	logger *slog.Logger
}

func NewUploadHandler(signer *upload.Signer, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{signer: signer, logger: logger}
}

// HandleUploadAuth returns fresh upload auth params. The route is behind
// RequireAuth, so only signed-in users can obtain signatures.
func (h *UploadHandler) HandleUploadAuth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.signer.Sign())
}
