package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteLightMetric writes a single light measurement to InfluxDB.
//
// This is the primary method for recording state telemetry after a
// successful mutation. The write is non-blocking; data is batched and
// sent asynchronously.
//
// Parameters:
//   - deviceID: Unique identifier for the light (e.g., "light-kitchen")
//   - measurement: The metric name (e.g., "brightness", "color_temperature")
//   - value: The numeric value to record
//
// Example:
//
//	client.WriteLightMetric("light-kitchen", "brightness", 50)
//	client.WriteLightMetric("light-kitchen", "power", 1)
func (c *Client) WriteLightMetric(deviceID string, measurement string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"light_metrics",
		map[string]string{
			"device_id":   deviceID,
			"measurement": measurement,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
//
// Example:
//
//	client.WritePoint("system_stats",
//	    map[string]string{"host": "lightsim-01"},
//	    map[string]interface{}{"uptime_seconds": 512.0})
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
