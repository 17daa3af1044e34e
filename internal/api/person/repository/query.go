package personRepository

const (
	queryUpsertPerson = `
INSERT INTO people (name, embedding, age, gender, photo_url, registered_at)
VALUES (:name, :embedding, :age, :gender, :photo_url, :registered_at)
ON CONFLICT (name) DO UPDATE
SET embedding     = EXCLUDED.embedding,
    age           = EXCLUDED.age,
    gender        = EXCLUDED.gender,
    photo_url     = EXCLUDED.photo_url,
    registered_at = EXCLUDED.registered_at`

	queryGetPerson = `
SELECT name, embedding, age, gender, photo_url, registered_at
FROM people
    WHERE name = :name`

	queryListPeople = `
SELECT name, age, gender, photo_url, registered_at
FROM people
    ORDER BY name`

	queryAllPeople = `
SELECT name, embedding, age, gender, photo_url, registered_at
FROM people
    ORDER BY registered_at, name`

	queryDeletePerson = `
DELETE FROM people
    WHERE name = :name`
)
