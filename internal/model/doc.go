// Package model defines the data structures shared by the metadata
// processors and the host that feeds them.
//
// # Metadata
//
// Metadata is the tag snapshot of one track: an ordered mapping from tag
// name to a list of values. Processors read and rewrite it in place.
//
//	m := model.NewMetadata()
//	m.Set("performer:guitar", "George Harrison")
//	m.Set("comment", "Composed by: John Lennon")
//
// # Relationship tree
//
// Recording, Work and Relation mirror the MusicBrainz relationship graph
// for one track: the recording links to the works it performs, and each
// work can link back to every recording that performs it.
//
//	for _, rel := range recording.Relations {
//	    if rel.IsPerformance() && rel.HasWork() && rel.Attributes.Cover {
//	        // rel.Work.Relations holds the sibling performances
//	    }
//	}
//
// Optional parts of the tree are pointers or nil slices and are checked
// with the Has* predicates.
//
// # Candidate keys
//
// CandidateKey groups artist credits by their ordered artist IDs. It is
// comparable, so it can key a map directly.
package model
