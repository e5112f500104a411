package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func ReadJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func ErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{
		"error": message,
	})
}

func GenerateUUID() string {
	return uuid.New().String()
}

const tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateReportID returns a short display identifier like VERI-4K7Q2N.
// Uniqueness is best-effort only; these are presentation tokens, not keys.
func GenerateReportID() string {
	return "VERI-" + randomToken(6)
}

// GenerateSubmissionID returns the receipt token, REC- plus the trailing six
// digits of the current epoch milliseconds.
func GenerateSubmissionID() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return "REC-" + millis
}

// ContentHash returns the receipt's hash token: a truncated sha256 of the
// submitted content, formatted for display. This is a fingerprint for the
// receipt, not a collision-resistant content address.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return "SHA-" + strings.ToUpper(hex.EncodeToString(sum[:8]))
}

func randomToken(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}
