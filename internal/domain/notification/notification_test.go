//go:build unit

package notification_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"trip-booking/internal/domain/notification"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		body     string
		want     notification.Notification
		relevant bool
	}{
		{
			name:     "ipn query topic and id",
			query:    "topic=payment&id=123",
			want:     notification.Notification{Type: "payment", PaymentID: "123"},
			relevant: true,
		},
		{
			name:     "webhook query type and data.id",
			query:    "type=payment&data.id=456",
			want:     notification.Notification{Type: "payment", PaymentID: "456"},
			relevant: true,
		},
		{
			name:     "json body with numeric data.id",
			body:     `{"action":"payment.updated","type":"payment","data":{"id":789}}`,
			want:     notification.Notification{Type: "payment", PaymentID: "789"},
			relevant: true,
		},
		{
			name:     "json body with string id",
			body:     `{"type":"payment","id":"1011"}`,
			want:     notification.Notification{Type: "payment", PaymentID: "1011"},
			relevant: true,
		},
		{
			name:     "body wins over query",
			query:    "topic=merchant_order&id=1",
			body:     `{"type":"payment","data":{"id":"2"}}`,
			want:     notification.Notification{Type: "payment", PaymentID: "2"},
			relevant: true,
		},
		{
			name:     "query fills what body lacks",
			query:    "data.id=77",
			body:     `{"type":"payment"}`,
			want:     notification.Notification{Type: "payment", PaymentID: "77"},
			relevant: true,
		},
		{
			name:  "merchant order is irrelevant",
			query: "topic=merchant_order&id=99",
			want:  notification.Notification{Type: "merchant_order", PaymentID: "99"},
		},
		{
			name: "payment without id is irrelevant",
			body: `{"type":"payment","data":{}}`,
			want: notification.Notification{Type: "payment"},
		},
		{
			name:     "malformed body falls back to query",
			query:    "topic=payment&id=5",
			body:     `{"type":`,
			want:     notification.Notification{Type: "payment", PaymentID: "5"},
			relevant: true,
		},
		{
			name: "empty",
			want: notification.Notification{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := url.ParseQuery(c.query)
			assert.NoError(t, err)

			got := notification.Parse(q, []byte(c.body))

			assert.Equal(t, c.want, got)
			assert.Equal(t, c.relevant, got.Relevant())
		})
	}
}
