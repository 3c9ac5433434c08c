// Package mqtt provides MQTT client connectivity for the light simulator.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with wildcard support
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// The simulator publishes retained state snapshots so other services can
// observe the light without polling the HTTP API, and accepts commands on
// its command topic as an alternative control surface.
//
//	Controllers ↔ MQTT Broker ↔ Light Simulator
//
// The broker connection is optional (mqtt.enabled in config.yaml); the
// simulator runs standalone on HTTP alone when disabled.
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Subscribe to commands for this light
//	err = client.Subscribe(mqtt.Topics{}.LightCommand("light-kitchen"), 1,
//	    func(topic string, payload []byte) error {
//	        log.Printf("Received: %s = %s", topic, payload)
//	        return nil
//	    })
//
//	// Publish retained state
//	topic := mqtt.Topics{}.LightState("light-kitchen")
//	client.PublishRetained(topic, []byte(`{"is_on":true}`))
package mqtt
