package service

import (
	"fmt"
	"strings"

	"personlink/internal/person/models"
)

// Structured-query builders for the Wikidata vocabulary:
//   P31 instance of, Q5 human, P569 date of birth, P27 country of citizenship,
//   P185 doctoral student, P802 student, P184 doctoral advisor,
//   P1066 student of, P102 member of political party.
// The QueryRunner port hides the backend; any SPARQL-compatible store that
// supports EXISTS, OPTIONAL, and UNION can serve these.

// enrichmentQuery builds the single batched feature query for a candidate
// set. EXISTS projections keep the boolean variables present on every row;
// sitelinks and dob stay OPTIONAL so entities missing them still bind.
func enrichmentQuery(ids []models.EntityID, localeQID string) string {
	refs := make([]string, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, "wd:"+string(id))
	}
	values := strings.Join(refs, " ")

	return fmt.Sprintf(`SELECT ?item ?itemLabel ?sitelinks
       (EXISTS { ?item wdt:P31 wd:Q5 } AS ?isHuman)
       (EXISTS { ?item wdt:P569 ?dob } AS ?hasDob)
       (EXISTS { ?item wdt:P27 wd:%s } AS ?isLocal)
       ?dob
WHERE {
  VALUES ?item { %s }
  OPTIONAL { ?item wikibase:sitelinks ?sitelinks . }
  OPTIONAL { ?item wdt:P569 ?dob . }
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}`, localeQID, values)
}

// birthdateQuery fetches up to ten birthdate values for one entity.
func birthdateQuery(id models.EntityID) string {
	return fmt.Sprintf(`SELECT ?dob WHERE {
  wd:%s wdt:P569 ?dob .
} LIMIT 10`, id)
}

// studentsQuery unions the four student relation paths: direct student and
// doctoral-student properties plus the inverses of doctoral-advisor and
// student-of pointing at this entity.
func studentsQuery(id models.EntityID) string {
	return fmt.Sprintf(`SELECT ?student ?studentLabel WHERE {
  wd:%s (wdt:P185|wdt:P802|^wdt:P184|^wdt:P1066) ?student .
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en,da". }
}`, id)
}

// politicalPartyQuery fetches direct party memberships.
func politicalPartyQuery(id models.EntityID) string {
	return fmt.Sprintf(`SELECT ?party ?partyLabel WHERE {
  wd:%s wdt:P102 ?party .
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}`, id)
}

// supervisorsQuery unions the doctoral-advisor and student-of properties.
func supervisorsQuery(id models.EntityID) string {
	return fmt.Sprintf(`SELECT DISTINCT ?supervisor ?supervisorLabel WHERE {
  {
    wd:%s wdt:P184 ?supervisor .
  }
  UNION
  {
    wd:%s wdt:P1066 ?supervisor .
  }
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}`, id, id)
}
