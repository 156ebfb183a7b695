// seehuhn.de/go/colorimetry - colour science computations in Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package spectrum

// CIE1964 is the CIE 1964 10° supplementary standard observer, tabulated
// from 380 nm to 780 nm in steps of 5 nm.
var CIE1964 = mustObserver("CIE 1964 10°", cie1964Table, 700)

var cie1964Table = []CMF{
	{380, 0.00016, 1.7e-05, 0.000705},
	{385, 0.000662, 7.2e-05, 0.002928},
	{390, 0.002362, 0.000253, 0.010482},
	{395, 0.007242, 0.000769, 0.032344},
	{400, 0.01911, 0.002004, 0.086011},
	{405, 0.0434, 0.004509, 0.19712},
	{410, 0.084736, 0.008756, 0.389366},
	{415, 0.140638, 0.014456, 0.65676},
	{420, 0.204492, 0.021391, 0.972542},
	{425, 0.264737, 0.029497, 1.2825},
	{430, 0.314679, 0.038676, 1.55348},
	{435, 0.357719, 0.049602, 1.7985},
	{440, 0.383734, 0.062077, 1.96728},
	{445, 0.386726, 0.074704, 2.0273},
	{450, 0.370702, 0.089456, 1.9948},
	{455, 0.342957, 0.106256, 1.9007},
	{460, 0.302273, 0.128201, 1.74537},
	{465, 0.254085, 0.152761, 1.5549},
	{470, 0.195618, 0.18519, 1.31756},
	{475, 0.132349, 0.21994, 1.0302},
	{480, 0.080507, 0.253589, 0.772125},
	{485, 0.041072, 0.297665, 0.57006},
	{490, 0.016172, 0.339133, 0.415254},
	{495, 0.005132, 0.395379, 0.302356},
	{500, 0.003816, 0.460777, 0.218502},
	{505, 0.015444, 0.53136, 0.159249},
	{510, 0.037465, 0.606741, 0.112044},
	{515, 0.071358, 0.68566, 0.082248},
	{520, 0.117749, 0.761757, 0.060709},
	{525, 0.172953, 0.82333, 0.04305},
	{530, 0.236491, 0.875211, 0.030451},
	{535, 0.304213, 0.92381, 0.020584},
	{540, 0.376772, 0.961988, 0.013676},
	{545, 0.451584, 0.9822, 0.007918},
	{550, 0.529826, 0.991761, 0.003988},
	{555, 0.616053, 0.99911, 0.001091},
	{560, 0.705224, 0.99734, 0},
	{565, 0.793832, 0.98238, 0},
	{570, 0.878655, 0.955552, 0},
	{575, 0.951162, 0.915175, 0},
	{580, 1.01416, 0.868934, 0},
	{585, 1.0743, 0.825623, 0},
	{590, 1.11852, 0.777405, 0},
	{595, 1.1343, 0.720353, 0},
	{600, 1.12399, 0.658341, 0},
	{605, 1.0891, 0.593878, 0},
	{610, 1.03048, 0.527963, 0},
	{615, 0.95074, 0.461834, 0},
	{620, 0.856297, 0.398057, 0},
	{625, 0.75493, 0.339554, 0},
	{630, 0.647467, 0.283493, 0},
	{635, 0.53511, 0.228254, 0},
	{640, 0.431567, 0.179828, 0},
	{645, 0.34369, 0.140211, 0},
	{650, 0.268329, 0.107633, 0},
	{655, 0.2043, 0.081187, 0},
	{660, 0.152568, 0.060281, 0},
	{665, 0.11221, 0.044096, 0},
	{670, 0.081261, 0.0318, 0},
	{675, 0.05793, 0.022602, 0},
	{680, 0.040851, 0.015905, 0},
	{685, 0.028623, 0.01113, 0},
	{690, 0.019941, 0.007749, 0},
	{695, 0.013842, 0.005375, 0},
	{700, 0.009577, 0.003718, 0},
	{705, 0.006605, 0.002565, 0},
	{710, 0.004553, 0.001768, 0},
	{715, 0.003145, 0.001222, 0},
	{720, 0.002175, 0.000846, 0},
	{725, 0.001506, 0.000586, 0},
	{730, 0.001045, 0.000407, 0},
	{735, 0.000727, 0.000284, 0},
	{740, 0.000508, 0.000199, 0},
	{745, 0.000356, 0.00014, 0},
	{750, 0.000251, 9.8e-05, 0},
	{755, 0.000178, 7e-05, 0},
	{760, 0.000126, 5e-05, 0},
	{765, 9e-05, 3.6e-05, 0},
	{770, 6.5e-05, 2.5e-05, 0},
	{775, 4.6e-05, 1.8e-05, 0},
	{780, 3.3e-05, 1.3e-05, 0},
}
