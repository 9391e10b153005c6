package godeck

// Version is the release of the layout engine, stamped into written
// presentations and reported by deckgen --version.
const Version = "1.0.0"
