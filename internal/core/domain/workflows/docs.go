// Package workflows wires the per-document processing steps into fixed
// pipelines. A workflow is pure sequencing: it threads the evolving state
// through its steps in order and converts the final state into an outcome
// event. All business logic lives in the steps; all external effects come in
// through the dependency struct supplied at construction.
package workflows
