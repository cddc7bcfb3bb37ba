package drdigital

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionName = "preview_session"

// previewAvailable reports whether the content source can serve drafts.
func (a *App) previewAvailable() bool {
	if a.Config.PreviewSecret == "" {
		return false
	}
	p, ok := a.src.(interface{ PreviewEnabled() bool })
	return ok && p.PreviewEnabled()
}

// handlePreview turns on draft content for the session and redirects to the
// previewed post. The secret is shared with the CMS preview URL settings.
func (a *App) handlePreview(c echo.Context) error {
	if !a.previewAvailable() {
		return echo.ErrNotFound
	}
	ip := c.RealIP()
	if !a.previewLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many attempts. Try again later.")
	}
	secret := c.QueryParam("secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(a.Config.PreviewSecret)) != 1 {
		a.previewLimiter.Record(ip)
		a.Log.Warn().Str("ip", ip).Msg("invalid preview secret")
		return c.String(http.StatusUnauthorized, "Invalid token")
	}

	target := "/blog/"
	if slug := strings.TrimSpace(c.QueryParam("slug")); slug != "" {
		if a.Content.GetBlogPostBySlug(c.Request().Context(), slug, true) == nil {
			return c.String(http.StatusNotFound, "Unknown slug")
		}
		target = "/blog/" + url.PathEscape(slug) + "/"
	}
	if err := setPreviewSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusTemporaryRedirect, target)
}

func (a *App) handleExitPreview(c echo.Context) error {
	if IsPreview(c) {
		if err := clearPreviewSession(c); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusTemporaryRedirect, "/")
}

// IsPreview reports whether the request belongs to a preview session.
func IsPreview(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	on, ok := sess.Values["preview"].(bool)
	return ok && on
}

func setPreviewSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values["preview"] = true
	return sess.Save(c.Request(), c.Response())
}

func clearPreviewSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}
