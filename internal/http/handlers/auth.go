package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Gemy-star/reverse/internal/http/flash"
	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/http/render"
	"github.com/Gemy-star/reverse/internal/modules/cart"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/users"
	"github.com/Gemy-star/reverse/pkg/view"
)

type AuthHandler struct {
	catalog    catalog.Repository
	users      *users.Service
	cart       *cart.Service
	sessionCfg middleware.SessionCfg
	flashCodec *flash.Codec
	renderer   *render.Engine
	cookieName string
}

func NewAuthHandler(cat catalog.Repository, us *users.Service, cartSvc *cart.Service, sessionCfg middleware.SessionCfg, fc *flash.Codec, r *render.Engine) *AuthHandler {
	return &AuthHandler{
		catalog:    cat,
		users:      us,
		cart:       cartSvc,
		sessionCfg: sessionCfg,
		flashCodec: fc,
		renderer:   r,
		cookieName: sessionCfg.CookieName,
	}
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	ReturnTo string `form:"return_to"`
}

type registerForm struct {
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required,min=8"`
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name"`
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	cats, _ := h.catalog.ActiveCategories(c.Request.Context())
	h.renderer.HTML(c, http.StatusOK, "login", view.LoginPage{
		Base:     baseFor(c, "Sign In", cats),
		ReturnTo: c.Query("return_to"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.loginError(c, form, formErrors(err))
		return
	}

	u, err := h.users.Authenticate(ctx, form.Email, form.Password)
	if errors.Is(err, users.ErrBadCredentials) {
		h.loginError(c, form, map[string]string{"email": "Invalid email or password."})
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	sess, err := middleware.CreateSession(h.sessionCfg, u.ID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, sess.ID, int(h.sessionCfg.TTL.Seconds()), "/", "", h.sessionCfg.Secure, true)

	// fold the guest cart into the user cart so nothing is lost at login
	if guestKey := middleware.GuestKey(c); guestKey != "" {
		h.mergeGuestCart(c, u.ID, guestKey)
	}

	dest := safeReturnTo(form.ReturnTo)
	render.RedirectWithFlash(c, h.flashCodec, view.Flash{
		Kind:    view.FlashSuccess,
		Message: "Welcome back, " + u.FirstName + "!",
	}, dest)
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	cats, _ := h.catalog.ActiveCategories(c.Request.Context())
	h.renderer.HTML(c, http.StatusOK, "register", view.RegisterPage{
		Base: baseFor(c, "Create Account", cats),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.registerError(c, form, formErrors(err))
		return
	}

	u, err := h.users.Register(ctx, form.Email, form.Password, form.FirstName, form.LastName)
	if errors.Is(err, users.ErrEmailTaken) {
		h.registerError(c, form, map[string]string{"email": "This email is already registered."})
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	sess, err := middleware.CreateSession(h.sessionCfg, u.ID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, sess.ID, int(h.sessionCfg.TTL.Seconds()), "/", "", h.sessionCfg.Secure, true)

	if guestKey := middleware.GuestKey(c); guestKey != "" {
		h.mergeGuestCart(c, u.ID, guestKey)
	}

	render.RedirectWithFlash(c, h.flashCodec, view.Flash{
		Kind:    view.FlashSuccess,
		Message: "Your account is ready. Happy shopping!",
	}, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(h.cookieName); err == nil && sessionID != "" {
		_ = middleware.DeleteSession(h.sessionCfg, sessionID)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.sessionCfg.Secure, true)

	render.RedirectWithFlash(c, h.flashCodec, view.Flash{
		Kind:    view.FlashInfo,
		Message: "You have been signed out.",
	}, "/")
}

func (h *AuthHandler) mergeGuestCart(c *gin.Context, userID, guestKey string) {
	ctx := c.Request.Context()

	guest, err := h.cart.Repo().FindSessionCart(ctx, guestKey)
	if err != nil || len(guest.Items) == 0 {
		return
	}
	target, err := h.cart.Repo().GetOrCreateUserCart(ctx, userID)
	if err != nil {
		return
	}
	for _, it := range guest.Items {
		_ = h.cart.Repo().AddItem(ctx, target.ID, it.VariantID, it.Quantity)
	}
	_ = h.cart.Repo().Clear(ctx, guest.ID)
}

func (h *AuthHandler) loginError(c *gin.Context, form loginForm, errs map[string]string) {
	cats, _ := h.catalog.ActiveCategories(c.Request.Context())
	h.renderer.HTML(c, http.StatusUnprocessableEntity, "login", view.LoginPage{
		Base:     baseFor(c, "Sign In", cats),
		Email:    form.Email,
		ReturnTo: form.ReturnTo,
		Errors:   errs,
	})
}

func (h *AuthHandler) registerError(c *gin.Context, form registerForm, errs map[string]string) {
	cats, _ := h.catalog.ActiveCategories(c.Request.Context())
	h.renderer.HTML(c, http.StatusUnprocessableEntity, "register", view.RegisterPage{
		Base:      baseFor(c, "Create Account", cats),
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Errors:    errs,
	})
}

// formErrors flattens validator errors into field -> message.
func formErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Please check the form and try again."
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required."
		case "email":
			out[field] = "Enter a valid email address."
		case "min":
			out[field] = "Must be at least " + fe.Param() + " characters."
		default:
			out[field] = "Invalid value."
		}
	}
	return out
}

// safeReturnTo only follows same-site relative paths.
func safeReturnTo(dest string) string {
	if dest == "" || !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") {
		return "/"
	}
	return dest
}
