package locale

import (
	"embed"
	"encoding/json"
	"log/slog"

	"do-coupon-system/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs shared by the HTTP handlers.
const (
	MsgLoginMissing       = "login.missing"
	MsgLoginSuccess       = "login.success"
	MsgLoginWrongPassword = "login.wrong_password"
	MsgLoginNotFound      = "login.not_found"
	MsgLoginInactive      = "login.inactive"
	MsgCouponValid        = "coupon.valid"
	MsgCouponInvalid      = "coupon.invalid"
	MsgCouponExpired      = "coupon.expired"
	MsgCouponUsed         = "coupon.used"
	MsgCouponInactive     = "coupon.inactive"
	MsgCouponRedeemed     = "coupon.redeemed"
	MsgCouponMissing      = "coupon.missing_fields"
	MsgCouponCreated      = "coupon.created"
	MsgCouponBusy         = "coupon.busy"
	MsgAccountNotFound    = "account.not_found"
	MsgMemberMissing      = "member.missing_fields"
	MsgMemberRecorded     = "member.recorded"
	MsgMemberDeducted     = "member.deducted"
	MsgMemberNotFound     = "member.not_found"
	MsgMemberAmbiguous    = "member.ambiguous"
	MsgMemberNoCollection = "member.no_collection"
	MsgMemberInsufficient = "member.insufficient"
	MsgSessionInvalid     = "session.invalid"
	MsgAuthRequired       = "auth.required"
	MsgAuthForbidden      = "auth.forbidden"
	MsgRequestInvalid     = "request.invalid"
	MsgServerError        = "server.error"
)

const QueryParam = "lang"

//go:embed messages/*.json
var messageFS embed.FS

type Translator struct {
	bundle *i18n.Bundle
}

// New loads the embedded English and Chinese catalogues. English is the fallback.
func New() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, f := range []string{"messages/active.en.json", "messages/active.zh.json"} {
		if _, err := bundle.LoadMessageFileFS(messageFS, f); err != nil {
			return nil, err
		}
	}
	return &Translator{bundle: bundle}, nil
}

// Languages lists the caller's preferences: ?lang=, then the i18next cookie,
// then Accept-Language.
func Languages(c *gin.Context) []string {
	var langs []string
	if l := c.Query(QueryParam); l != "" {
		langs = append(langs, l)
	}
	if l := cookie.GetLanguage(c); l != "" {
		langs = append(langs, l)
	}
	if l := c.GetHeader("Accept-Language"); l != "" {
		langs = append(langs, l)
	}
	return langs
}

// T localises id for the request. Unknown ids come back unchanged.
func (t *Translator) T(c *gin.Context, id string, data ...map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := i18n.NewLocalizer(t.bundle, Languages(c)...).Localize(cfg)
	if err != nil {
		slog.Warn("missing translation", slog.String("id", id), slog.String("error", err.Error()))
		return id
	}
	return msg
}
