package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"recordlink/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS issued_codes (
  code TEXT PRIMARY KEY,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS parse_cache (
  hash TEXT PRIMARY KEY,
  fieldsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS customers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  facebookId TEXT,
  email TEXT,
  phone TEXT,
  address TEXT,
  city TEXT,
  zipCode TEXT,
  country TEXT,
  notes TEXT,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_customers_name ON customers(name);
CREATE INDEX IF NOT EXISTS idx_customers_phone ON customers(phone);

CREATE TABLE IF NOT EXISTS addresses (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  source TEXT NOT NULL,
  company TEXT,
  contact TEXT,
  street TEXT,
  city TEXT,
  zipCode TEXT,
  country TEXT,
  email TEXT,
  phone TEXT,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS matches (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  addressId INTEGER NOT NULL,
  customerId INTEGER NOT NULL,
  method TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(addressId) REFERENCES addresses(id),
  FOREIGN KEY(customerId) REFERENCES customers(id)
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// ListIssuedCodes preloads the code registry with every code issued in prior
// runs, so cross-run uniqueness holds.
func (d *DB) ListIssuedCodes() ([]string, error) {
	rows, err := d.conn.Query(`SELECT code FROM issued_codes ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	return out, rows.Err()
}

func (d *DB) AddIssuedCodes(codes []string) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO issued_codes (code) VALUES (?) ON CONFLICT(code) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, code := range codes {
		if _, err := stmt.Exec(code); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (d *DB) GetCachedParse(hash string) (*internal.ParsedRecord, error) {
	var fieldsJSON string
	err := d.conn.QueryRow(`SELECT fieldsJson FROM parse_cache WHERE hash = ?`, hash).Scan(&fieldsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec internal.ParsedRecord
	if err := json.Unmarshal([]byte(fieldsJSON), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (d *DB) PutCachedParse(hash string, rec internal.ParsedRecord) error {
	fieldsJSON, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = d.conn.Exec(`
INSERT INTO parse_cache (hash, fieldsJson) VALUES (?, ?)
ON CONFLICT(hash) DO UPDATE SET fieldsJson = excluded.fieldsJson
`, hash, string(fieldsJSON))
	return err
}

func (d *DB) InsertCustomer(c internal.Customer) (int64, error) {
	result, err := d.conn.Exec(`
INSERT INTO customers (name, facebookId, email, phone, address, city, zipCode, country, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, c.Name, c.FacebookID, c.Email, c.Phone, c.Address, c.City, c.ZipCode, c.Country, c.Notes)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (d *DB) ListCustomers() ([]internal.Customer, []int64, error) {
	rows, err := d.conn.Query(`
SELECT id, name, facebookId, email, phone, address, city, zipCode, country, notes
FROM customers ORDER BY id
`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var out []internal.Customer
	var ids []int64
	for rows.Next() {
		var id int64
		var c internal.Customer
		if err := rows.Scan(&id, &c.Name, &c.FacebookID, &c.Email, &c.Phone, &c.Address, &c.City, &c.ZipCode, &c.Country, &c.Notes); err != nil {
			return nil, nil, err
		}
		out = append(out, c)
		ids = append(ids, id)
	}
	return out, ids, rows.Err()
}

func (d *DB) InsertAddress(a internal.AddressEntry) (int64, error) {
	result, err := d.conn.Exec(`
INSERT INTO addresses (source, company, contact, street, city, zipCode, country, email, phone)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, string(a.Source), a.Company, a.Contact, a.Street, a.City, a.ZipCode, a.Country, a.Email, a.Phone)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (d *DB) InsertMatch(addressID, customerID int64, method internal.MatchMethod) error {
	_, err := d.conn.Exec(`
INSERT INTO matches (addressId, customerId, method) VALUES (?, ?, ?)
`, addressID, customerID, string(method))
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
