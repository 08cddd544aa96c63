// Package associate contains the DeliveryAssociate aggregate: availability
// status and last-known location of a courier working the service area.
package associate
