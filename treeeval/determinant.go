package treeeval

// determinant computes the determinant of mat's leading cols×cols minor via
// Gauss elimination over integers (the pivot is the first nonzero entry at
// or below the diagonal, swapped up with a sign flip), mutating mat in
// place — a direct port of to_diagonal_matrix. mat has rows ≥ cols (the
// incidence matrix has one redundant row, since every column sums to zero);
// only the first cols diagonal entries are multiplied into the result, the
// same way the original only walks `iter < col`.
//
// Each elimination step adds the pivot row times the integer weight
// -pivot/entry to the row below. That division is exact as long as pivots
// and entries stay in {-1, 0, 1}, which holds for incidence matrices: every
// entry starts in that set and elimination on them keeps it there.
func determinant(mat [][]int, rows, cols int) int {
	det := 1
	for ofs := 0; ofs < cols; ofs++ {
		pivot := -1
		for iter := ofs; iter < rows; iter++ {
			if mat[iter][ofs] != 0 {
				pivot = iter
				break
			}
		}
		if pivot == -1 {
			continue
		}
		if pivot != ofs {
			mat[pivot], mat[ofs] = mat[ofs], mat[pivot]
			det *= -1
		}
		for iter := ofs + 1; iter < rows; iter++ {
			if mat[iter][ofs] == 0 {
				continue
			}
			weight := -mat[ofs][ofs] / mat[iter][ofs]
			for cnt := ofs; cnt < cols; cnt++ {
				mat[iter][cnt] += mat[ofs][cnt] * weight
			}
		}
	}
	for i := 0; i < cols; i++ {
		det *= mat[i][i]
	}
	return det
}
