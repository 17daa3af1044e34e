package personRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"FaceAttendance/internal/api/person"
	"FaceAttendance/internal/entity"
	contextPkg "FaceAttendance/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type PersonDB struct {
	Name         string          `db:"name"`
	Embedding    pq.Float64Array `db:"embedding"`
	Age          sql.NullInt64   `db:"age"`
	Gender       sql.NullString  `db:"gender"`
	PhotoURL     sql.NullString  `db:"photo_url"`
	RegisteredAt time.Time       `db:"registered_at"`
}

func (p PersonDB) toEntity() entity.Person {
	e := entity.Person{
		Name:         p.Name,
		Embedding:    []float64(p.Embedding),
		RegisteredAt: p.RegisteredAt,
	}
	if p.Age.Valid {
		age := int(p.Age.Int64)
		e.Age = &age
	}
	if p.Gender.Valid {
		gender := p.Gender.String
		e.Gender = &gender
	}
	if p.PhotoURL.Valid {
		e.PhotoURL = p.PhotoURL.String
	}
	return e
}

func (r *postgresRepository) Upsert(c context.Context, p entity.Person) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"name":          p.Name,
		"embedding":     pq.Float64Array(p.Embedding),
		"age":           p.Age,
		"gender":        p.Gender,
		"photo_url":     p.PhotoURL,
		"registered_at": p.RegisteredAt,
	}

	query, args, err := sqlx.Named(queryUpsertPerson, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Upsert")
		return err
	}
	query = r.DB.Rebind(query)

	if _, err := r.DB.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       p.Name,
			"error":      err.Error(),
		}).Error("Database error when upserting person")
		return person.ErrStoreUnavailable
	}

	return nil
}

func (r *postgresRepository) Get(c context.Context, name string) (entity.Person, error) {
	requestID := contextPkg.GetRequestID(c)
	var row PersonDB

	query, args, err := sqlx.Named(queryGetPerson, map[string]interface{}{"name": name})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get named query preparation err")
		return entity.Person{}, err
	}
	query = r.DB.Rebind(query)

	if err := r.DB.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Person{}, person.ErrPersonNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
			"error":      err.Error(),
		}).Error("Database error when fetching person")
		return entity.Person{}, person.ErrStoreUnavailable
	}

	return row.toEntity(), nil
}

func (r *postgresRepository) List(c context.Context) ([]entity.Person, error) {
	people, err := r.selectPeople(c, queryListPeople)
	if err != nil {
		return nil, err
	}

	// List never carries embeddings past the recognition boundary.
	for i := range people {
		people[i].Embedding = nil
	}
	return people, nil
}

func (r *postgresRepository) All(c context.Context) ([]entity.Person, error) {
	return r.selectPeople(c, queryAllPeople)
}

func (r *postgresRepository) selectPeople(c context.Context, query string) ([]entity.Person, error) {
	requestID := contextPkg.GetRequestID(c)

	rows, err := r.DB.QueryxContext(c, r.DB.Rebind(query))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing people")
		return nil, person.ErrStoreUnavailable
	}
	defer rows.Close()

	var people []entity.Person
	for rows.Next() {
		var row PersonDB
		if err := rows.StructScan(&row); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to scan person row")
			return nil, person.ErrStoreUnavailable
		}
		people = append(people, row.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, person.ErrStoreUnavailable
	}

	return people, nil
}

func (r *postgresRepository) Remove(c context.Context, name string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeletePerson, map[string]interface{}{"name": name})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Remove named query preparation err")
		return err
	}
	query = r.DB.Rebind(query)

	result, err := r.DB.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
			"error":      err.Error(),
		}).Error("Database error when deleting person")
		return person.ErrStoreUnavailable
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return person.ErrPersonNotFound
	}

	return nil
}
