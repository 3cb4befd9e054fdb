package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mannancrackers/shop/app/helpers"
	"github.com/unrolled/render"
)

// ErrorHandler renders the themed error page for every failure surface:
// router 404s, panics, the role gate and the /error/... routes.
type ErrorHandler struct {
	render *render.Render
}

func NewErrorHandler(r *render.Render) *ErrorHandler {
	return &ErrorHandler{render: r}
}

func (h *ErrorHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, code, title, message, details string) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":        title,
		"ErrorCode":    code,
		"ErrorTitle":   title,
		"ErrorMessage": message,
		"ErrorDetails": details,
	})
	_ = h.render.HTML(w, status, "error", data)
}

func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusNotFound, "404",
		"Page Not Found",
		"The page you're looking for doesn't exist or has been moved. Let's get you back on track!",
		"The requested URL could not be found on this server.")
}

func (h *ErrorHandler) InternalServerError(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusInternalServerError, "500",
		"Internal Server Error",
		"Our servers encountered an issue while processing your request. Our team has been notified!",
		"An unexpected error occurred. Please try refreshing the page or come back later.")
}

func (h *ErrorHandler) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusForbidden, "403",
		"Access Denied",
		"You don't have permission to access this resource.",
		"If you believe this is an error, please contact support.")
}

func (h *ErrorHandler) BadRequest(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusBadRequest, "400",
		"Bad Request",
		"The server couldn't understand your request. Please try again with valid data.",
		"The request sent to the server was invalid or malformed.")
}

// ConnectionError keeps the original non-numeric code, so it goes out as
// a plain 500.
func (h *ErrorHandler) ConnectionError(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusInternalServerError, "connection",
		"Connection Error",
		"It seems we're having trouble connecting to our servers. This might be a network issue.",
		"Check your internet connection and try again.")
}

func (h *ErrorHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusServiceUnavailable, "503",
		"Under Maintenance",
		"We're currently performing maintenance. We'll be back online soon!",
		"Thank you for your patience. Check back in a few moments.")
}

// ErrorPageHandler serves the /error/{code} preview routes. Unknown codes
// fall back to the 404 page.
func (h *ErrorHandler) ErrorPageHandler(w http.ResponseWriter, r *http.Request) {
	switch mux.Vars(r)["code"] {
	case "404":
		h.NotFound(w, r)
	case "500":
		h.InternalServerError(w, r)
	case "403":
		h.Forbidden(w, r)
	case "400":
		h.BadRequest(w, r)
	case "connection":
		h.ConnectionError(w, r)
	case "maintenance":
		h.Maintenance(w, r)
	default:
		h.NotFound(w, r)
	}
}
