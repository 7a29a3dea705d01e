package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeFeedSubscribe(t *testing.T) {
	feed := NewChangeFeed()

	var reports, likes int
	stopReports := feed.Subscribe("reports", func() { reports++ })
	stopLikes := feed.Subscribe("report_likes", func() { likes++ })

	feed.Publish("reports")
	feed.Publish("reports")
	feed.Publish("report_likes")
	feed.Publish("report_views")

	assert.Equal(t, 2, reports)
	assert.Equal(t, 1, likes)

	stopReports()
	stopReports()
	feed.Publish("reports")
	assert.Equal(t, 2, reports)
	assert.Equal(t, 0, feed.Subscribers("reports"))

	feed.publishAll()
	assert.Equal(t, 2, likes)

	stopLikes()
	assert.NoError(t, feed.Close())
}
