package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// withGrants resolves the caller's permission grants from the "Authorization"
// header and stores them in the request context under [utils.GrantsCtxKey].
//
// Unlike a conventional auth middleware it never rejects the request: a
// missing header, a malformed bearer token, or a token that fails validation
// all resolve to the zero-value [models.Grants], and the service layer
// answers each gated operation with a permission error. Keeping the denial
// in one place means a caller probing the API cannot distinguish "no token"
// from "token without the needed grant".
func (h *Handler) withGrants(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var grants models.Grants

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Warn().Err(err).Msg("malformed authorization header, no grants resolved")
			} else {
				grants, err = utils.ValidateAndParseGrantToken(tokenString, h.cfg.TokenSignKey, h.cfg.TokenIssuer)
				if err != nil {
					log.Warn().Err(err).Msg("grant token rejected, no grants resolved")
				}
			}
		}

		ctx := context.WithValue(r.Context(), utils.GrantsCtxKey, grants)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
