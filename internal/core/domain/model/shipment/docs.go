// Package shipment contains the Shipment aggregate, its status state
// machine, and the Tariff fare model. All status transitions and the
// once-only associate assignment are validated here; orchestration and
// event publication live one layer up in the application use cases.
package shipment
