package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"regexp"
)

// Schema names the MySQL tables shared with the order intake application.
//
// Column names are fixed; table names can be overridden per deployment
// (DB_TABLE_* env vars) and are validated once at startup.
type Schema struct {
	Orders         string
	Clients        string
	Tools          string
	EquipmentOrder string
	StatusLog      string
	QuoteOrder     string
	QuoteMachine   string
	QuoteItem      string
	PendingAuth    string
}

var tableName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func DefaultSchema() Schema {
	return Schema{
		Orders:         "b2c_orden",
		Clients:        "b2c_cliente",
		Tools:          "b2c_herramienta",
		EquipmentOrder: "b2c_herramienta_orden",
		StatusLog:      "b2c_herramienta_status_log",
		QuoteOrder:     "b2c_cotizacion_orden",
		QuoteMachine:   "b2c_cotizacion_maquina",
		QuoteItem:      "b2c_cotizacion_item",
		PendingAuth:    "b2c_wa_autorizacion_pendiente",
	}
}

// SchemaFromEnv returns DefaultSchema with the DB_TABLE_* overrides applied.
func SchemaFromEnv() (Schema, error) {
	d := DefaultSchema()
	s := Schema{
		Orders:         getenvDefault("DB_TABLE_ORDERS", d.Orders),
		Clients:        getenvDefault("DB_TABLE_CLIENTS", d.Clients),
		Tools:          getenvDefault("DB_TABLE_TOOLS", d.Tools),
		EquipmentOrder: getenvDefault("DB_TABLE_EQUIPMENT_ORDER", d.EquipmentOrder),
		StatusLog:      getenvDefault("DB_TABLE_STATUS_LOG", d.StatusLog),
		QuoteOrder:     getenvDefault("DB_TABLE_QUOTE_ORDER", d.QuoteOrder),
		QuoteMachine:   getenvDefault("DB_TABLE_QUOTE_MACHINE", d.QuoteMachine),
		QuoteItem:      getenvDefault("DB_TABLE_QUOTE_ITEM", d.QuoteItem),
		PendingAuth:    getenvDefault("DB_TABLE_PENDING_AUTH", d.PendingAuth),
	}
	return s, s.Validate()
}

// Validate rejects names that could not be safely interpolated into SQL.
func (s Schema) Validate() error {
	for _, name := range []string{s.Orders, s.Clients, s.Tools, s.EquipmentOrder, s.StatusLog, s.QuoteOrder, s.QuoteMachine, s.QuoteItem, s.PendingAuth} {
		if !tableName.MatchString(name) {
			return fmt.Errorf("invalid table name %q", name)
		}
	}
	return nil
}

// EnsureSchema creates the tables this service owns when they are missing.
// Orders, clients and tools belong to the intake application and are never created here.
func EnsureSchema(ctx context.Context, db *sql.DB, s Schema) error {
	for _, stmt := range s.ddl() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	log.Printf("[db][schema] tables verified pending=%s status_log=%s", s.PendingAuth, s.StatusLog)
	return nil
}

func (s Schema) ddl() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS ` + s.QuoteOrder + ` (
  uid_orden VARCHAR(64) PRIMARY KEY,
  subtotal DECIMAL(14,2) NOT NULL DEFAULT 0,
  iva DECIMAL(14,2) NOT NULL DEFAULT 0,
  total DECIMAL(14,2) NOT NULL DEFAULT 0,
  mensaje_whatsapp TEXT NULL,
  whatsapp_enviado TINYINT(1) NOT NULL DEFAULT 0,
  whatsapp_enviado_at DATETIME NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`,
		`CREATE TABLE IF NOT EXISTS ` + s.QuoteMachine + ` (
  uid_orden VARCHAR(64) NOT NULL,
  uid_herramienta_orden VARCHAR(64) NOT NULL,
  tecnico_id VARCHAR(64) NULL,
  mano_obra DECIMAL(14,2) NOT NULL DEFAULT 0,
  descripcion_trabajo TEXT NULL,
  subtotal DECIMAL(14,2) NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  PRIMARY KEY (uid_orden, uid_herramienta_orden)
)`,
		`CREATE TABLE IF NOT EXISTS ` + s.QuoteItem + ` (
  id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
  uid_orden VARCHAR(64) NOT NULL,
  uid_herramienta_orden VARCHAR(64) NOT NULL,
  nombre VARCHAR(255) NOT NULL,
  cantidad INT NOT NULL DEFAULT 1,
  precio DECIMAL(14,2) NOT NULL DEFAULT 0,
  subtotal DECIMAL(14,2) NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  INDEX idx_cot_item (uid_orden, uid_herramienta_orden)
)`,
		`CREATE TABLE IF NOT EXISTS ` + s.StatusLog + ` (
  id BIGINT AUTO_INCREMENT PRIMARY KEY,
  uid_herramienta_orden VARCHAR(64) NOT NULL,
  estado VARCHAR(32) NOT NULL,
  changed_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  INDEX idx_hsl (uid_herramienta_orden, changed_at)
)`,
		`CREATE TABLE IF NOT EXISTS ` + s.PendingAuth + ` (
  uid_autorizacion BIGINT AUTO_INCREMENT PRIMARY KEY,
  uid_orden VARCHAR(64) NOT NULL,
  wa_phone VARCHAR(20) NOT NULL,
  estado VARCHAR(32) NOT NULL,
  equipos_mostrados TEXT NULL,
  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  UNIQUE KEY uq_wa_phone (wa_phone),
  INDEX idx_wa_created (created_at)
)`,
	}
}
