/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package pipeline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultLearningRate   = 0.1
	DefaultMaxIter        = 100
	DefaultMaxLeafNodes   = 31
	DefaultMinSamplesLeaf = 20
)

// GradientBoostingRegressor is a least squares gradient boosted ensemble of
// regression trees grown best-first.
type GradientBoostingRegressor struct {
	LearningRate     float64
	MaxIter          int
	MaxLeafNodes     int
	MaxDepth         int
	MinSamplesLeaf   int
	L2Regularization float64

	Features int
	Baseline float64
	Trees    []*RegressionTree
}

// NewGradientBoostingRegressor returns a regressor with default settings.
func NewGradientBoostingRegressor() *GradientBoostingRegressor {
	return &GradientBoostingRegressor{
		LearningRate:   DefaultLearningRate,
		MaxIter:        DefaultMaxIter,
		MaxLeafNodes:   DefaultMaxLeafNodes,
		MinSamplesLeaf: DefaultMinSamplesLeaf,
	}
}

func (g *GradientBoostingRegressor) Fit(X, y *mat.Dense) error {
	n, p := X.Dims()
	yn, k := y.Dims()
	if n == 0 || p == 0 {
		return errors.New("empty design matrix")
	}

	if k != 1 {
		return fmt.Errorf("gradient boosting supports a single target, got %d", k)
	}

	if n != yn {
		return fmt.Errorf("design has %d rows but target has %d", n, yn)
	}

	if g.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be positive, got %v", g.LearningRate)
	}

	if g.MaxLeafNodes != 0 && g.MaxLeafNodes < 2 {
		return fmt.Errorf("max_leaf_nodes must be at least 2, got %d", g.MaxLeafNodes)
	}

	target := mat.Col(nil, 0, y)
	g.Features = p
	g.Baseline = floats.Sum(target) / float64(n)
	g.Trees = nil

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, X)
	}

	raw := make([]float64, n)
	for i := range raw {
		raw[i] = g.Baseline
	}

	residual := make([]float64, n)
	minLeaf := g.MinSamplesLeaf
	if minLeaf < 1 {
		minLeaf = 1
	}

	grower := &treeGrower{
		rows:         rows,
		residual:     residual,
		maxLeafNodes: g.MaxLeafNodes,
		maxDepth:     g.MaxDepth,
		minLeaf:      minLeaf,
		l2:           g.L2Regularization,
	}

	for iter := 0; iter < g.MaxIter; iter++ {
		floats.SubTo(residual, target, raw)

		tree := grower.grow()
		if tree.Leaves() < 2 {
			break
		}

		for i, row := range rows {
			raw[i] += g.LearningRate * tree.Predict(row)
		}
		g.Trees = append(g.Trees, tree)
	}

	return nil
}

func (g *GradientBoostingRegressor) Predict(X *mat.Dense) (*mat.Dense, error) {
	if g.Features == 0 {
		return nil, errors.New("gradient boosting is not fitted")
	}

	n, p := X.Dims()
	if p != g.Features {
		return nil, fmt.Errorf("design has %d columns, model expects %d", p, g.Features)
	}

	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		row := mat.Row(nil, i, X)
		v := g.Baseline
		for _, tree := range g.Trees {
			v += g.LearningRate * tree.Predict(row)
		}
		out.Set(i, 0, v)
	}

	return out, nil
}

// TreeNode is a split node, or a leaf when Left is negative.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     float64
}

// RegressionTree is a binary tree stored as a flat node slice rooted at 0.
type RegressionTree struct {
	Nodes []TreeNode
}

// Leaves returns the number of leaves.
func (t *RegressionTree) Leaves() int {
	var leaves int
	for _, node := range t.Nodes {
		if node.Left < 0 {
			leaves++
		}
	}

	return leaves
}

// Predict walks row down to a leaf.
func (t *RegressionTree) Predict(row []float64) float64 {
	i := 0
	for t.Nodes[i].Left >= 0 {
		node := t.Nodes[i]
		if row[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}

	return t.Nodes[i].Value
}

type treeGrower struct {
	rows         [][]float64
	residual     []float64
	maxLeafNodes int
	maxDepth     int
	minLeaf      int
	l2           float64
}

type split struct {
	feature   int
	threshold float64
	gain      float64
	left      []int
	right     []int
}

type leaf struct {
	node    int
	depth   int
	samples []int
	best    *split
}

func (g *treeGrower) grow() *RegressionTree {
	samples := make([]int, len(g.rows))
	for i := range samples {
		samples[i] = i
	}

	tree := &RegressionTree{}
	root := g.newLeaf(tree, samples, 0)
	open := []*leaf{root}
	leaves := 1

	for g.maxLeafNodes == 0 || leaves < g.maxLeafNodes {
		best := -1
		for i, l := range open {
			if l.best != nil && (best < 0 || l.best.gain > open[best].best.gain) {
				best = i
			}
		}

		if best < 0 {
			break
		}

		l := open[best]
		open = append(open[:best], open[best+1:]...)

		left := g.newLeaf(tree, l.best.left, l.depth+1)
		right := g.newLeaf(tree, l.best.right, l.depth+1)
		tree.Nodes[l.node].Feature = l.best.feature
		tree.Nodes[l.node].Threshold = l.best.threshold
		tree.Nodes[l.node].Left = left.node
		tree.Nodes[l.node].Right = right.node
		open = append(open, left, right)
		leaves++
	}

	return tree
}

func (g *treeGrower) newLeaf(tree *RegressionTree, samples []int, depth int) *leaf {
	var sum float64
	for _, i := range samples {
		sum += g.residual[i]
	}

	tree.Nodes = append(tree.Nodes, TreeNode{
		Left:  -1,
		Right: -1,
		Value: sum / (float64(len(samples)) + g.l2),
	})

	l := &leaf{
		node:    len(tree.Nodes) - 1,
		depth:   depth,
		samples: samples,
	}

	if g.maxDepth == 0 || depth < g.maxDepth {
		l.best = g.bestSplit(samples, sum)
	}

	return l
}

// bestSplit finds the split of samples with the largest reduction of the
// squared error, honoring the minimum leaf size.
func (g *treeGrower) bestSplit(samples []int, sum float64) *split {
	n := len(samples)
	if n < 2*g.minLeaf {
		return nil
	}

	parent := sum * sum / (float64(n) + g.l2)
	tolerance := 1e-12 * math.Max(1, math.Abs(parent))

	var best *split
	order := append([]int(nil), samples...)
	for f := range g.rows[0] {
		sort.SliceStable(order, func(a, b int) bool {
			return g.rows[order[a]][f] < g.rows[order[b]][f]
		})

		var left float64
		for k := 0; k < n-1; k++ {
			left += g.residual[order[k]]
			nLeft := k + 1
			if nLeft < g.minLeaf {
				continue
			}

			if n-nLeft < g.minLeaf {
				break
			}

			lo, hi := g.rows[order[k]][f], g.rows[order[k+1]][f]
			if lo == hi {
				continue
			}

			right := sum - left
			gain := left*left/(float64(nLeft)+g.l2) + right*right/(float64(n-nLeft)+g.l2) - parent
			if gain <= tolerance || (best != nil && gain <= best.gain) {
				continue
			}

			best = &split{
				feature:   f,
				threshold: lo + (hi-lo)/2,
				gain:      gain,
				left:      append([]int(nil), order[:nLeft]...),
				right:     append([]int(nil), order[nLeft:]...),
			}
		}
	}

	return best
}
