package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"os"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// NewSnapClient builds a Snap client from MIDTRANS_SERVER_KEY. Set
// MIDTRANS_ENV=production for live payments; anything else is sandbox.
func NewSnapClient() *snap.Client {
	var client snap.Client

	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}
	client.New(os.Getenv("MIDTRANS_SERVER_KEY"), env)

	return &client
}

// VerifySignature checks a webhook notification's signature_key:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifySignature(
	orderID string,
	statusCode string,
	grossAmount string,
	signature string,
	serverKey string,
) bool {
	raw := orderID + statusCode + grossAmount + serverKey
	hash := sha512.Sum512([]byte(raw))
	expected := hex.EncodeToString(hash[:])

	return expected == signature
}
