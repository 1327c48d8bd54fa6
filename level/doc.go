// Package level finds likelihood levels that enclose a target probability
// mass.
//
// Two searches are provided:
//
//   - Find1D works on a sampled 1D curve. Every sample i is assigned the
//     mass of all samples at least as likely as i; the sample whose mass is
//     closest to the target fixes a reference likelihood, and the k samples
//     with likelihood nearest to it are returned, ordered by distance to the
//     mode. The rank-based mass is robust to multi-modal curves.
//
//   - Search works on a normalised probability array of any dimensionality
//     (passed flat). For each target level it seeds a threshold from the
//     Gaussian approximation max·exp(-χ²₂⁻¹(L)/2) and walks it with a step
//     that is halved on every change of direction until the super-level-set
//     mass Σ{p > t} is within a relative tolerance of L.
//
// Search soft-fails: when MaxIterations is exhausted the best threshold is
// returned with Converged=false and its achieved mass, and callers decide
// whether the drift is acceptable. Levels are searched independently.
//
// Ties are broken by input order (first index wins) everywhere.
package level
