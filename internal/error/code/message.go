package code

// User-facing messages, localized in French like the rest of the product.
// Clients key on the HTTP status and the success flag, never on these texts.
var codeMessageMap = map[int]string{
	ErrSuccess:         "Succès",
	ErrUnknown:         "Erreur du serveur",
	ErrBind:            "Requête invalide",
	ErrValidation:      "Paramètres invalides",
	ErrTokenInvalid:    "Token invalide",
	ErrTooManyRequests: "Trop de requêtes, veuillez réessayer plus tard",
	ErrRouteNotFound:   "Endpoint non trouvé",

	ErrBadCredentials:  "Identifiants incorrects",
	ErrInvalidPhone:    "Numéro de téléphone invalide",
	ErrInvalidPIN:      "Code PIN invalide",
	ErrInvalidEmail:    "Email invalide",
	ErrInvalidPassword: "Mot de passe invalide",

	ErrWorkerNotFound:   "Employé non trouvé",
	ErrHostNotFound:     "Hôte non trouvé",
	ErrPhoneAlreadyUsed: "Numéro de téléphone déjà utilisé",

	ErrDatabase:         "Erreur du serveur",
	ErrStoreUnavailable: "Service de base de données non disponible",
}

var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrRouteNotFound:   StatusNotFound,

	ErrBadCredentials:  StatusUnauthorized,
	ErrInvalidPhone:    StatusBadRequest,
	ErrInvalidPIN:      StatusBadRequest,
	ErrInvalidEmail:    StatusBadRequest,
	ErrInvalidPassword: StatusBadRequest,

	ErrWorkerNotFound:   StatusNotFound,
	ErrHostNotFound:     StatusNotFound,
	ErrPhoneAlreadyUsed: StatusBadRequest,

	ErrDatabase:         StatusInternalServerError,
	ErrStoreUnavailable: StatusServiceUnavailable,
}

// GetMessage returns the localized message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
