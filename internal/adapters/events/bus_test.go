package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got []string
	unsubscribeFirst := bus.Subscribe("scan-progress", func(payload any) { got = append(got, "first:"+payload.(string)) })
	unsubscribeSecond := bus.Subscribe("scan-progress", func(payload any) { got = append(got, "second:"+payload.(string)) })
	bus.Subscribe("other", func(any) { got = append(got, "other") })

	bus.Publish("scan-progress", "a")
	assert.Equal(t, []string{"first:a", "second:a"}, got)

	unsubscribeFirst()
	unsubscribeFirst()
	bus.Publish("scan-progress", "b")
	assert.Equal(t, []string{"first:a", "second:a", "second:b"}, got)

	unsubscribeSecond()
	assert.Equal(t, 0, bus.Subscribers("scan-progress"))
	assert.Equal(t, 1, bus.Subscribers("other"))
}

func TestBusIgnoresNilHandler(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	unsubscribe := bus.Subscribe("scan-progress", nil)
	unsubscribe()
	assert.Equal(t, 0, bus.Subscribers("scan-progress"))
	bus.Publish("scan-progress", nil)
}
