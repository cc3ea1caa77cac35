package main

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

/*

sqlite frame sink. one transaction per frame; sqlite allows a single writer
so only one worker drains into the database. indices are created after the
run so inserts stay fast.

*/

const schema = `
CREATE TABLE particles (
	frame	INTEGER,
	id	INTEGER,
	x	REAL,
	y	REAL,
	size	REAL,
	hue	REAL);

CREATE TABLE links (
	frame	INTEGER,
	a	INTEGER, -- lower particle id
	b	INTEGER,
	dist	REAL,
	alpha	REAL,
	weight	REAL);
`

const indices = `
CREATE INDEX idx_particles_frame ON particles (frame, id);
CREATE INDEX idx_links_frame ON links (frame, a, b);
`

const insertParticle = `INSERT INTO particles VALUES (?, ?, ?, ?, ?, ?);`
const insertLink = `INSERT INTO links VALUES (?, ?, ?, ?, ?, ?);`

// opens and initializes db in filename. refuses to clobber an existing file.
func opendb(filename string) *sql.DB {
	if info, _ := os.Stat(filename); info != nil {
		fmt.Printf("%s exists\n", filename)
		os.Exit(1)
	}
	db, err := sql.Open("sqlite3", "file:"+filename+"?_journal_mode=OFF&_synchronous=OFF")
	if err != nil {
		panic(err)
	}
	if _, err := db.Exec(schema); err != nil {
		panic(err)
	}
	return db
}

func createIndices(db *sql.DB) {
	if _, err := db.Exec(indices); err != nil {
		panic(err)
	}
}

// frameToSqlite drains frame jobs into db until ch closes.
func frameToSqlite(db *sql.DB, wg *sync.WaitGroup, ch chan *frameJob) {
	defer wg.Done()

	pstmt, err := db.Prepare(insertParticle)
	if err != nil {
		panic(err)
	}
	lstmt, err := db.Prepare(insertLink)
	if err != nil {
		panic(err)
	}

	for job := range ch {
		tx, err := db.Begin()
		if err != nil {
			panic(err)
		}
		ps, ls := tx.Stmt(pstmt), tx.Stmt(lstmt)

		for _, p := range job.Particles {
			if _, err = ps.Exec(job.Frame, p.ID, p.X, p.Y, p.Size, p.Hue); err != nil {
				break
			}
		}
		if err == nil {
			for _, l := range job.Links {
				if _, err = ls.Exec(job.Frame, l.A, l.B, l.Dist, l.Alpha, l.Weight); err != nil {
					break
				}
			}
		}

		if err != nil {
			tx.Rollback()
			panic(err)
		}
		tx.Commit()
	}
}
