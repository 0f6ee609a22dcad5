// Package telemetry polls a station's shore-side charging equipment
// over Modbus for live charging power and charged-container stock,
// the concrete "populate before solve" collaborator spec.md §6
// describes for station-side live readings.
package telemetry

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// Register layout for the dock charger (input registers, holding
// "currently available" readings rather than lifetime totals).
const (
	regChargingPowerKW = 3000 // uint16, power x10 kW
	regChargedStock    = 3002 // uint16, container count
)

// Client reads a single dock charger's Modbus registers over either
// TCP or RTU transport.
type Client struct {
	client     modbus.Client
	rtuHandler *modbus.RTUClientHandler
	tcpHandler *modbus.TCPClientHandler
}

// NewTCPClient dials a dock charger reachable over Modbus TCP.
func NewTCPClient(address string, slaveID byte) (*Client, error) {
	handler := modbus.NewTCPClientHandler(address)
	handler.SlaveId = slaveID
	handler.Timeout = 3 * time.Second
	if err := handler.Connect(); err != nil {
		return nil, fmt.Errorf("telemetry: connecting to %s: %w", address, err)
	}
	return &Client{client: modbus.NewClient(handler), tcpHandler: handler}, nil
}

// NewRTUClient dials a dock charger reachable over Modbus RTU
// (a serial line shared by the goburrow/serial transport).
func NewRTUClient(device string, baudRate int, slaveID byte) (*Client, error) {
	handler := modbus.NewRTUClientHandler(device)
	handler.BaudRate = baudRate
	handler.DataBits = 8
	handler.Parity = "N"
	handler.StopBits = 1
	handler.SlaveId = slaveID
	handler.Timeout = 3 * time.Second
	if err := handler.Connect(); err != nil {
		return nil, fmt.Errorf("telemetry: connecting to %s: %w", device, err)
	}
	return &Client{client: modbus.NewClient(handler), rtuHandler: handler}, nil
}

func (c *Client) Close() error {
	if c.rtuHandler != nil {
		return c.rtuHandler.Close()
	}
	if c.tcpHandler != nil {
		return c.tcpHandler.Close()
	}
	return nil
}

// Reading is one dock charger's live state.
type Reading struct {
	ChargingPowerKW float64
	ChargedStock    int
}

// ReadStationState polls a dock charger's current available power
// and charged-container count.
func (c *Client) ReadStationState() (Reading, error) {
	data, err := c.client.ReadInputRegisters(regChargingPowerKW, 1)
	if err != nil {
		return Reading{}, fmt.Errorf("telemetry: reading charging power: %w", err)
	}
	powerKW := float64(binary.BigEndian.Uint16(data)) / 10.0

	stockData, err := c.client.ReadInputRegisters(regChargedStock, 1)
	if err != nil {
		return Reading{}, fmt.Errorf("telemetry: reading charged stock: %w", err)
	}
	stock := int(binary.BigEndian.Uint16(stockData))

	return Reading{ChargingPowerKW: powerKW, ChargedStock: stock}, nil
}
